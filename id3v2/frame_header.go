// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"github.com/ik5/id3al/utils"
)

// FrameFlags are the status and format flags of a frame, decoded from the
// version-specific bit positions. ID3v2.2 frames have none.
type FrameFlags struct {
	TagAlterDiscard  bool
	FileAlterDiscard bool
	ReadOnly         bool

	Grouping            bool
	Compression         bool
	Encryption          bool
	Unsynchronization   bool
	DataLengthIndicator bool
}

// FrameHeader is the header in front of every frame.
type FrameHeader struct {
	ID string
	// RawSize is the size field as found on the wire.
	RawSize uint32
	// Size is the decoded frame size, excluding the frame header.
	Size   uint32
	Status byte
	Format byte
	Flags  FrameFlags

	version byte
}

// Version returns the major version of the tag the frame was read from.
func (h FrameHeader) Version() byte { return h.version }

func parseFrameHeader(b []byte, l *layout) (FrameHeader, error) {
	if len(b) < l.frameHeaderSize {
		return FrameHeader{}, truncated(stageFrame, l.frameHeaderSize, len(b))
	}

	h := FrameHeader{
		ID:      string(b[:l.idSize]),
		version: l.version,
	}

	if l.version == 2 {
		h.RawSize = utils.BigEndian24(b[3:6])
		h.Size = h.RawSize

		return h, nil
	}

	h.RawSize = utils.BigEndian32(b[4:8])
	h.Size = h.RawSize
	if l.synchsafeSizes {
		h.Size = utils.FromSynchsafe(h.RawSize)
	}
	h.Status = b[8]
	h.Format = b[9]
	h.Flags = l.frameFlags(h.Status, h.Format)

	return h, nil
}

// Validate reports the first rule the frame header breaks.
func (h FrameHeader) Validate() error {
	l, ok := layoutFor(h.version)
	if !ok {
		return invalid(stageFrame, "version", "2, 3 or 4", h.version)
	}

	if l.synchsafeSizes && !utils.IsSynchsafe(h.RawSize) {
		return invalid(stageFrame, "size", "synchsafe integer", hex32(h.RawSize))
	}
	if h.Status&l.status.undefined != 0 {
		return invalid(stageFrame, "status flags", "no bits in "+hex8(l.status.undefined), hex8(h.Status))
	}
	if h.Format&l.format.undefined != 0 {
		return invalid(stageFrame, "format flags", "no bits in "+hex8(l.format.undefined), hex8(h.Format))
	}
	if h.Flags.Compression && !h.Flags.DataLengthIndicator {
		return invalid(stageFrame, "data length indicator", "set with compression", "unset")
	}

	return nil
}

// Valid reports whether Validate returns nil.
func (h FrameHeader) Valid() bool { return h.Validate() == nil }
