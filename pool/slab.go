// File: pool/slab.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size byte slabs carved from one arena block.
//
// Slabs feed vec.Wrap for byte vectors whose slot storage never touches the
// GC heap. When the carve runs dry, Acquire falls back to plain heap slabs;
// the shelf takes either kind back.

package pool

import (
	"sync/atomic"

	"github.com/momentics/fixvec/api"
	"github.com/momentics/fixvec/internal/arena"
)

// SlabPool hands out fixed-size byte slabs. Safe for concurrent use.
type SlabPool struct {
	size  int
	block *arena.Arena
	shelf chan []byte

	gets     atomic.Int64
	puts     atomic.Int64
	misses   atomic.Int64
	discards atomic.Int64
}

// NewSlabPool reserves count slabs of size bytes each from a single arena
// block. Invalid sizes panic; a failed reservation falls back to heap slabs
// for the whole pool.
func NewSlabPool(size, count int) *SlabPool {
	if size <= 0 || count <= 0 {
		panic("fixvec: slab size and count must be positive")
	}
	p := &SlabPool{
		size:  size,
		shelf: make(chan []byte, count),
	}
	block, err := arena.New(size * count)
	if err == nil {
		p.block = block
		buf := block.Bytes()
		for i := 0; i < count; i++ {
			p.shelf <- buf[i*size : (i+1)*size : (i+1)*size]
		}
	}
	return p
}

// SlabSize returns the fixed slab size in bytes.
func (p *SlabPool) SlabSize() int { return p.size }

// Acquire returns a zeroed slab of SlabSize bytes.
func (p *SlabPool) Acquire() []byte {
	p.gets.Add(1)
	select {
	case slab := <-p.shelf:
		clear(slab)
		return slab
	default:
		p.misses.Add(1)
		return make([]byte, p.size)
	}
}

// Release returns a slab to the shelf. Slabs of a foreign size, and slabs
// arriving when the shelf is full, are discarded to the GC.
func (p *SlabPool) Release(slab []byte) {
	if len(slab) != p.size {
		p.discards.Add(1)
		return
	}
	select {
	case p.shelf <- slab:
		p.puts.Add(1)
	default:
		p.discards.Add(1)
	}
}

// Stats exposes slab accounting.
func (p *SlabPool) Stats() api.Stats {
	return api.Stats{
		Gets:     p.gets.Load(),
		Puts:     p.puts.Load(),
		Misses:   p.misses.Load(),
		Discards: p.discards.Load(),
		Idle:     int64(len(p.shelf)),
	}
}

// Close releases the arena block. Every arena-backed slab must be back on
// the shelf or out of use before Close; afterwards Acquire serves heap
// slabs only.
func (p *SlabPool) Close() error {
	for {
		select {
		case <-p.shelf:
		default:
			if p.block == nil {
				return nil
			}
			block := p.block
			p.block = nil
			return block.Free()
		}
	}
}
