// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math/bits"
)

// Swap32 reverses the byte order of a raw 32-bit field.
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// BigEndian32 reads the first four bytes of b as a big-endian integer.
func BigEndian32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// BigEndian24 reads the first three bytes of b as a big-endian integer.
// ID3v2.2 frame sizes use this width.
func BigEndian24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
