// File: vec/collect.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk construction from a source sequence.

package vec

import (
	"fmt"
	"iter"
)

// Collect builds a vector of the given capacity by pushing every element of
// seq in source order. A source longer than the capacity is a programmer
// error and panics: this adapter has no way to report partial construction.
func Collect[T any](capacity int, seq iter.Seq[T]) *Vec[T] {
	return CollectInto(New[T](capacity), seq)
}

// CollectInto pushes every element of seq into v in source order.
// Overflow (or a closed vector) panics, as in Collect.
func CollectInto[T any](v *Vec[T], seq iter.Seq[T]) *Vec[T] {
	for val := range seq {
		if err := v.Push(val); err != nil {
			panic(fmt.Sprintf("fixvec: collect into capacity %d: %v", v.Cap(), err))
		}
	}
	return v
}
