// File: api/events.go
// Author: momentics <momentics@gmail.com>
//
// Container lifecycle events and observer contract.
// Observers are opt-in diagnostics; a container with no observer pays
// nothing for them.

package api

// EventType identifies a container lifecycle transition.
type EventType uint8

const (
	// EventPush fires after a slot transitions to live.
	EventPush EventType = iota
	// EventPop fires after the top slot transitions back to dead.
	EventPop
	// EventOverflow fires when Push is rejected at capacity.
	EventOverflow
	// EventRelease fires after a live element is released during teardown.
	EventRelease
	// EventClose fires once, after teardown completes.
	EventClose
)

// String returns the event name for logs and diagnostics.
func (t EventType) String() string {
	switch t {
	case EventPush:
		return "push"
	case EventPop:
		return "pop"
	case EventOverflow:
		return "overflow"
	case EventRelease:
		return "release"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event carries the container state observed right after a transition.
type Event struct {
	Type EventType
	Len  int
	Cap  int
}

// Observer receives container lifecycle events.
// Implementations must not call back into the observed container.
type Observer interface {
	OnVecEvent(Event)
}
