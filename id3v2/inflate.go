// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxPrealloc caps the buffer reserved up front for a declared size.
const maxPrealloc = 1 << 20

// Inflater decompresses a frame payload to exactly size bytes.
type Inflater interface {
	Inflate(src []byte, size int) ([]byte, error)
}

// InflaterFunc adapts a function to the Inflater interface.
type InflaterFunc func(src []byte, size int) ([]byte, error)

func (f InflaterFunc) Inflate(src []byte, size int) ([]byte, error) { return f(src, size) }

// ZlibInflater inflates zlib streams, the only compression ID3v2 defines.
type ZlibInflater struct{}

func (ZlibInflater) Inflate(src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrCodec, size)
	}

	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodec, err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	buf.Grow(min(size, maxPrealloc))
	// one extra byte detects streams longer than declared
	n, err := io.Copy(&buf, io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodec, err)
	}
	if n != int64(size) {
		return nil, fmt.Errorf("%w: inflated %d bytes, expected %d", ErrCodec, n, size)
	}

	return buf.Bytes(), nil
}
