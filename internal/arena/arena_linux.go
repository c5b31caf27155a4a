// File: internal/arena/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific block reservation over anonymous private mappings.

//go:build linux

package arena

import "golang.org/x/sys/unix"

func reserve(size int) ([]byte, bool, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false, err
	}
	return buf, true, nil
}

func release(buf []byte) error {
	return unix.Munmap(buf)
}
