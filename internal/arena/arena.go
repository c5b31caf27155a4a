// File: internal/arena/arena.go
// Package arena reserves raw byte blocks for slot storage.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// On Linux the block comes from an anonymous private mapping, so slab
// storage stays off the GC heap; elsewhere a plain slice is used.

package arena

import "fmt"

// Arena is one reserved byte block.
type Arena struct {
	buf    []byte
	mapped bool
}

// New reserves a block of the given size.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}
	buf, mapped, err := reserve(size)
	if err != nil {
		return nil, fmt.Errorf("arena: reserve %d bytes: %w", size, err)
	}
	return &Arena{buf: buf, mapped: mapped}, nil
}

// Bytes returns the reserved block. Nil after Free.
func (a *Arena) Bytes() []byte { return a.buf }

// Size returns the block size in bytes, 0 after Free.
func (a *Arena) Size() int { return len(a.buf) }

// Free releases the block. Idempotent; the block must no longer be
// referenced by any caller.
func (a *Arena) Free() error {
	if a.buf == nil {
		return nil
	}
	buf, mapped := a.buf, a.mapped
	a.buf = nil
	if !mapped {
		return nil
	}
	return release(buf)
}
