// SPDX-License-Identifier: EPL-2.0

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package mmfile

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only. The returned function unmaps it.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}

	size := fi.Size()
	if size == 0 {
		return []byte{}, noop, nil
	}
	if size > math.MaxInt {
		return nil, nil, fmt.Errorf("mmfile: %s: file too large (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}

	return data, func() error { return unix.Munmap(data) }, nil
}
