// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake releasable resources and observers for testing.

package fake

import (
	"fmt"
	"sync/atomic"
)

// Resource is a releasable probe. It counts Release calls so tests can
// assert the destructor ran exactly once; in strict mode a second Release
// panics immediately instead of waiting for the assertion.
type Resource struct {
	ID       int
	strict   bool
	releases atomic.Int32
}

// NewResource creates a resource probe.
func NewResource(id int) *Resource {
	return &Resource{ID: id}
}

// Strict arms the probe to panic on double release.
func (r *Resource) Strict() *Resource {
	r.strict = true
	return r
}

// Release records the destructor call.
func (r *Resource) Release() {
	if n := r.releases.Add(1); n > 1 && r.strict {
		panic(fmt.Sprintf("fake: resource %d released %d times", r.ID, n))
	}
}

// Released reports whether Release ran at least once.
func (r *Resource) Released() bool {
	return r.releases.Load() > 0
}

// ReleaseCount returns how many times Release ran.
func (r *Resource) ReleaseCount() int {
	return int(r.releases.Load())
}
