// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded inline vector over a fixed slot block.
//
// The slot block is sized once and never grows. Liveness is tracked by a
// single boundary: slots [0, length) are live, slots [length, cap) are dead.
// Pop and teardown zero each vacated slot, so a dead slot never pins a value
// and the release path cannot see the same value twice.

package vec

import (
	"fmt"
	"iter"

	"github.com/momentics/fixvec/api"
)

// Vec is a fixed-capacity vector backed by inline storage.
// It is plain single-owner state: callers sharing a Vec across goroutines
// must synchronize externally.
type Vec[T any] struct {
	slots  []T
	length int
	closed bool
	obs    api.Observer
}

var _ api.Container[int] = (*Vec[int])(nil)

// Option configures a Vec at construction time.
type Option[T any] func(*Vec[T])

// WithObserver attaches a lifecycle observer. Nil observers are ignored.
func WithObserver[T any](o api.Observer) Option[T] {
	return func(v *Vec[T]) { v.obs = o }
}

// New creates an empty vector with the given fixed capacity.
// The slot block is allocated once here; no element is constructed.
// Negative capacity panics.
func New[T any](capacity int, opts ...Option[T]) *Vec[T] {
	if capacity < 0 {
		panic("fixvec: negative capacity")
	}
	v := &Vec[T]{slots: make([]T, capacity)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Wrap creates an empty vector over caller-provided storage, so the slot
// block can live inside a caller struct, on the stack, or in an arena slab.
// Capacity is len(storage). Storage must be zero-valued; Wrap takes
// ownership of it until Close.
func Wrap[T any](storage []T, opts ...Option[T]) *Vec[T] {
	v := &Vec[T]{slots: storage}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return len(v.slots) }

// Closed reports whether the vector has been torn down.
func (v *Vec[T]) Closed() bool { return v.closed }

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.length }

// Push moves val into the next free slot and advances the boundary.
// At capacity it returns api.ErrOverflow and touches nothing; the caller
// keeps val. After Close it returns api.ErrClosed.
func (v *Vec[T]) Push(val T) error {
	if v.closed {
		return api.ErrClosed
	}
	if v.length == len(v.slots) {
		v.notify(api.EventOverflow)
		return api.ErrOverflow
	}
	v.slots[v.length] = val
	v.length++
	v.notify(api.EventPush)
	return nil
}

// Pop moves the most recently pushed value out to the caller and retreats
// the boundary. The vacated slot is zeroed: it returns to the same state as
// a slot that was never live. ok is false on an empty or closed vector.
func (v *Vec[T]) Pop() (val T, ok bool) {
	var zero T
	if v.closed || v.length == 0 {
		return zero, false
	}
	v.length--
	val = v.slots[v.length]
	v.slots[v.length] = zero
	v.notify(api.EventPop)
	return val, true
}

// At returns the live element at index i.
// Out-of-range access is a programmer error and panics.
func (v *Vec[T]) At(i int) T {
	v.check(i)
	return v.slots[i]
}

// Set replaces the live element at index i.
// Out-of-range access is a programmer error and panics.
// The previous value is overwritten, not released; callers owning
// releasable elements must release the old value themselves.
func (v *Vec[T]) Set(i int, val T) {
	v.check(i)
	v.slots[i] = val
}

func (v *Vec[T]) check(i int) {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("fixvec: index %d out of range [0,%d)", i, v.length))
	}
}

// Live returns the live prefix as a read-write window of exactly Len
// elements in insertion order. The window's capacity is clipped to its
// length, so appends through it cannot reach dead slots.
func (v *Vec[T]) Live() []T {
	return v.slots[:v.length:v.length]
}

// All ranges over the live prefix in insertion order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// String renders the live prefix exactly as the equivalent plain slice
// renders. Dead slots never appear.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("%v", v.Live())
}

// Reset drains every live element through the pop path, releasing each one
// that implements api.Releasable, and leaves the vector empty and reusable.
// Drain order is the reverse of insertion order.
func (v *Vec[T]) Reset() {
	for v.length > 0 {
		top, _ := v.Pop()
		if api.TryRelease(top) {
			v.notify(api.EventRelease)
		}
	}
}

// Close tears the vector down: live elements are drained and released in
// reverse insertion order via Reset, then the storage reference is severed
// so no later pass can touch a slot again. A second Close returns
// api.ErrClosed and does nothing.
func (v *Vec[T]) Close() error {
	if v.closed {
		return api.ErrClosed
	}
	v.Reset()
	v.slots = nil
	v.closed = true
	v.notify(api.EventClose)
	return nil
}

func (v *Vec[T]) notify(t api.EventType) {
	if v.obs == nil {
		return
	}
	v.obs.OnVecEvent(api.Event{Type: t, Len: v.length, Cap: len(v.slots)})
}
