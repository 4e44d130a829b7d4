// SPDX-License-Identifier: EPL-2.0

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package mmfile

import "os"

// Map reads the whole file at path. The returned function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	return data, noop, nil
}
