// File: fake/observer.go
// Author: momentics <momentics@gmail.com>
//
// Recording observer for lifecycle event assertions.

package fake

import (
	"sync"

	"github.com/momentics/fixvec/api"
)

// Observer records every event it receives.
type Observer struct {
	mu     sync.Mutex
	events []api.Event
}

// NewObserver creates an empty recording observer.
func NewObserver() *Observer {
	return &Observer{}
}

// OnVecEvent appends the event to the record.
func (o *Observer) OnVecEvent(e api.Event) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
}

// Events returns a copy of the recorded events in arrival order.
func (o *Observer) Events() []api.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]api.Event, len(o.events))
	copy(out, o.events)
	return out
}

// Count returns how many events of type t were recorded.
func (o *Observer) Count(t api.EventType) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, e := range o.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
