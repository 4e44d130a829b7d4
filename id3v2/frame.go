// SPDX-License-Identifier: EPL-2.0

package id3v2

// Frame is a decoded frame.
type Frame struct {
	FrameHeader

	// Offset is the position of the frame header in the tag's frame data.
	Offset int

	GroupID          byte
	EncryptionMethod byte
	// DataLength is the data length indicator, or the decompressed size in
	// ID3v2.3. Zero when the frame carries none.
	DataLength uint32

	// Payload is owned by the caller. It stays encrypted for encrypted
	// frames.
	Payload []byte
}
