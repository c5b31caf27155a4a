// File: internal/arena/arena_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback block reservation for platforms without the mmap path.

//go:build !linux

package arena

func reserve(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func release(buf []byte) error {
	_ = buf
	return nil
}
