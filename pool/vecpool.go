// File: pool/vecpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recycler for bounded vectors of one capacity class.
//
// Put drains the vector through its release path before shelving, so a
// pooled vector never carries live elements between owners. The shelf is a
// bounded FIFO; overflowing it closes the vector instead of growing.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/fixvec/api"
	"github.com/momentics/fixvec/vec"
)

// VecPool recycles vectors of a single capacity class.
// Safe for concurrent use.
type VecPool[T any] struct {
	class int
	shelf int

	mu   sync.Mutex
	idle *queue.Queue

	gets     atomic.Int64
	puts     atomic.Int64
	misses   atomic.Int64
	discards atomic.Int64
}

// NewVecPool creates a pool of vectors with the given capacity class,
// shelving at most shelf idle vectors. Invalid sizes panic.
func NewVecPool[T any](class, shelf int) *VecPool[T] {
	if class < 0 {
		panic("fixvec: negative capacity class")
	}
	if shelf <= 0 {
		panic("fixvec: shelf must be positive")
	}
	return &VecPool[T]{
		class: class,
		shelf: shelf,
		idle:  queue.New(),
	}
}

// Get returns an empty vector of the pool's capacity class, reusing a
// shelved one when available.
func (p *VecPool[T]) Get() *vec.Vec[T] {
	p.gets.Add(1)

	p.mu.Lock()
	if p.idle.Length() > 0 {
		v := p.idle.Remove().(*vec.Vec[T])
		p.mu.Unlock()
		return v
	}
	p.mu.Unlock()

	p.misses.Add(1)
	return vec.New[T](p.class)
}

// Put drains v through the release path and shelves it for reuse.
// Vectors of a foreign capacity class, and vectors arriving when the shelf
// is full, are closed instead. Nil and already-closed vectors are ignored.
func (p *VecPool[T]) Put(v *vec.Vec[T]) {
	if v == nil || v.Closed() {
		return
	}
	if v.Cap() != p.class {
		v.Reset()
		_ = v.Close()
		p.discards.Add(1)
		return
	}
	v.Reset()

	p.mu.Lock()
	if p.idle.Length() < p.shelf {
		p.idle.Add(v)
		p.mu.Unlock()
		p.puts.Add(1)
		return
	}
	p.mu.Unlock()

	p.discards.Add(1)
	_ = v.Close()
}

// Stats exposes reuse accounting.
func (p *VecPool[T]) Stats() api.Stats {
	p.mu.Lock()
	idle := int64(p.idle.Length())
	p.mu.Unlock()
	return api.Stats{
		Gets:     p.gets.Load(),
		Puts:     p.puts.Load(),
		Misses:   p.misses.Load(),
		Discards: p.discards.Load(),
		Idle:     idle,
	}
}
