// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Resource accounting metrics exposed by pooling layers.

package api

// Stats aggregates allocation/reuse accounting for a pool.
type Stats struct {
	// Gets counts handed-out objects.
	Gets int64
	// Puts counts objects returned to the pool.
	Puts int64
	// Misses counts Gets served by a fresh allocation.
	Misses int64
	// Discards counts Puts rejected by a full shelf.
	Discards int64
	// Idle is the current free-list depth.
	Idle int64
}

// InUse returns the number of objects currently held by callers.
func (s Stats) InUse() int64 {
	return s.Gets - s.Puts
}
