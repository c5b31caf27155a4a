// Package vec
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity inline vector for allocation-free hot paths.
// A Vec owns a block of slots and a live-prefix boundary: slots below the
// boundary hold values, slots above it hold nothing. Push and Pop move the
// boundary one slot at a time; teardown drains through the same path so
// every live element is released exactly once and dead slots are never
// touched. See vec.go and collect.go for implementation details.
package vec
