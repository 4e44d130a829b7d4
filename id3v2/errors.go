// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the input holds no valid ID3v2 tag.
	// Many audio files have none, so callers usually treat it as a result.
	ErrNotFound = errors.New("id3v2: no tag found")

	// ErrMalformed indicates a violated structural rule. Validation failures
	// are reported as *ValidationError, which unwraps to ErrMalformed.
	ErrMalformed = errors.New("id3v2: malformed tag")

	// ErrTruncated indicates a declared region that runs past the input.
	ErrTruncated = errors.New("id3v2: tag truncated")

	// ErrCodec indicates a compressed frame that could not be inflated to
	// its declared length.
	ErrCodec = errors.New("id3v2: frame decompression failed")

	// ErrResource indicates that the input could not be opened or read.
	ErrResource = errors.New("id3v2: cannot read input")
)

const (
	stageHeader    = "header"
	stageExtended  = "extended header"
	stageFooter    = "footer"
	stageFrame     = "frame header"
	stageFrameData = "frame data"
)

// ValidationError describes the field that made a structure invalid.
type ValidationError struct {
	Stage    string // header, extended header, footer, frame header or frame data
	Field    string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("id3v2: %s: invalid %s: expected %s, got %s", e.Stage, e.Field, e.Expected, e.Actual)
}

func (e *ValidationError) Unwrap() error { return ErrMalformed }

func invalid(stage, field string, expected, actual any) *ValidationError {
	return &ValidationError{
		Stage:    stage,
		Field:    field,
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(actual),
	}
}

func hex8(b byte) string    { return fmt.Sprintf("0x%02X", b) }
func hex32(v uint32) string { return fmt.Sprintf("0x%08X", v) }

func truncated(stage string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, %d available", ErrTruncated, stage, need, have)
}
