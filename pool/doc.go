// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for fixvec: vector recycling and arena-backed slab storage.
// Steady-state churn through a pool allocates nothing; every object handed
// out is drained through the container's own teardown path before reuse.
// See vecpool.go and slab.go for implementation details.
package pool
