// SPDX-License-Identifier: EPL-2.0

package frames

import "errors"

var (
	// ErrShortFrame indicates a frame body too short for its fixed fields.
	ErrShortFrame = errors.New("frames: frame body too short")

	// ErrBadEncoding indicates an unknown text encoding byte or text that
	// cannot be decoded with the declared encoding.
	ErrBadEncoding = errors.New("frames: invalid text encoding")

	// ErrCounterOverflow indicates a play counter wider than 64 bits.
	ErrCounterOverflow = errors.New("frames: counter exceeds 64 bits")
)
