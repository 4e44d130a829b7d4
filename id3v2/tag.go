// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"log/slog"
)

// Tag is a located and validated ID3v2 tag.
type Tag struct {
	// Offset is the position of the tag header in the input.
	Offset   int64
	Header   Header
	Extended *ExtendedHeader
	Footer   *Footer
	// FrameData is the frame region after resynchronisation (ID3v2.2 and
	// ID3v2.3) with the extended header removed, padding included.
	FrameData []byte

	log      *slog.Logger
	inflater Inflater
}

// Version returns the major version.
func (t *Tag) Version() byte { return t.Header.Version }

func (t *Tag) String() string { return t.Header.String() }

// Size returns the number of bytes the tag occupies in the input: header,
// tag body and footer.
func (t *Tag) Size() int64 {
	n := int64(HeaderSize) + int64(t.Header.Size())
	if t.Footer != nil {
		n += FooterSize
	}

	return n
}

// End returns the input offset just past the tag.
func (t *Tag) End() int64 { return t.Offset + t.Size() }

// Frames returns an iterator positioned at the first frame.
func (t *Tag) Frames() *Iterator { return t.FramesAt(0) }

// FramesAt returns an iterator positioned at off within FrameData.
func (t *Tag) FramesAt(off int) *Iterator {
	it := &Iterator{tag: t, pos: off, log: t.log, inflater: t.inflater}
	if it.log == nil {
		it.log = discardLogger
	}
	if it.inflater == nil {
		it.inflater = ZlibInflater{}
	}

	l, ok := layoutFor(t.Header.Version)
	if !ok {
		it.err = invalid(stageHeader, "version", "2, 3 or 4", t.Header.Version)
		return it
	}
	it.layout = l

	if off < 0 || off > len(t.FrameData) {
		it.err = invalid(stageFrameData, "offset", "0 to "+itoa(len(t.FrameData)), off)
	}

	return it
}
