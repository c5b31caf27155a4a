// File: api/container.go
// Author: momentics <momentics@gmail.com>
//
// Bounded container contracts: fixed-capacity storage with an explicit
// live-prefix boundary and release-exactly-once element lifecycle.

package api

// Container describes a fixed-capacity sequence over inline storage.
// Slots below Len hold live values in insertion order; slots at or above
// Len hold nothing and are never exposed.
type Container[T any] interface {
	// Cap returns the fixed capacity. Never changes after construction.
	Cap() int

	// Len returns the number of live elements, in [0, Cap].
	Len() int

	// Push moves a value into the next free slot.
	// Returns ErrOverflow at capacity; the container is untouched and
	// the caller retains the value.
	Push(v T) error

	// Pop moves the most recently pushed value out to the caller.
	// ok is false on an empty container; ownership transfers on success.
	Pop() (v T, ok bool)

	// At returns the live element at index i.
	// Panics if i is outside [0, Len).
	At(i int) T

	// Live returns the live prefix as a read-write window of exactly
	// Len elements. The window must never reach a dead slot.
	Live() []T

	// Close tears the container down: every live element is released
	// exactly once, last pushed first, then the storage is discarded.
	// After Close the container rejects all operations with ErrClosed.
	Close() error
}

// Releasable is the element destructor hook. Elements implementing it
// are released exactly once when they leave a container through teardown.
// Values handed out by Pop are the caller's to release.
type Releasable interface {
	// Release frees resources held by the value.
	// After Release, the value must not be used.
	Release()
}

// TryRelease releases v if it implements Releasable.
// Reports whether a release ran.
func TryRelease(v any) bool {
	if r, ok := v.(Releasable); ok {
		r.Release()
		return true
	}
	return false
}
