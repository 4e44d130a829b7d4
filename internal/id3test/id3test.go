// SPDX-License-Identifier: EPL-2.0

// Package id3test builds ID3v2 byte fixtures for tests. It does not import
// the id3v2 package so that package's own tests can use it.
package id3test

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zlib"

	"github.com/ik5/id3al/utils"
)

// Text encodings as stored in the first byte of text frames.
const (
	ISO88591 byte = 0
	UTF16    byte = 1
	UTF16BE  byte = 2
	UTF8     byte = 3
)

// Header returns a tag header with a synchsafe tag size.
func Header(version, revision, flags byte, size int) []byte {
	b := make([]byte, 10)
	copy(b, "ID3")
	b[3] = version
	b[4] = revision
	b[5] = flags
	binary.BigEndian.PutUint32(b[6:], utils.ToSynchsafe(uint32(size)))

	return b
}

// Footer returns a footer mirroring Header.
func Footer(version, revision, flags byte, size int) []byte {
	b := Header(version, revision, flags, size)
	copy(b, "3DI")

	return b
}

// Frame4 returns an ID3v2.4 frame with a synchsafe size.
func Frame4(id string, status, format byte, body []byte) []byte {
	b := make([]byte, 10, 10+len(body))
	copy(b, id)
	binary.BigEndian.PutUint32(b[4:], utils.ToSynchsafe(uint32(len(body))))
	b[8] = status
	b[9] = format

	return append(b, body...)
}

// Frame3 returns an ID3v2.3 frame with a plain big-endian size.
func Frame3(id string, status, format byte, body []byte) []byte {
	b := make([]byte, 10, 10+len(body))
	copy(b, id)
	binary.BigEndian.PutUint32(b[4:], uint32(len(body)))
	b[8] = status
	b[9] = format

	return append(b, body...)
}

// Frame2 returns an ID3v2.2 frame with a 3-byte size.
func Frame2(id string, body []byte) []byte {
	n := len(body)
	b := []byte{0, 0, 0, byte(n >> 16), byte(n >> 8), byte(n)}
	copy(b, id)

	return append(b, body...)
}

// Tag joins a header, the frames and padding zero bytes. The header size
// covers frames and padding.
func Tag(version, flags byte, padding int, frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	body = append(body, make([]byte, padding)...)

	return append(Header(version, 0, flags, len(body)), body...)
}

// TextBody returns a text frame body: the encoding byte followed by text.
func TextBody(enc byte, text string) []byte {
	return append([]byte{enc}, text...)
}

// Synchsafe returns v as 4 synchsafe bytes, as used by data length
// indicators.
func Synchsafe(v int) []byte {
	return binary.BigEndian.AppendUint32(nil, utils.ToSynchsafe(uint32(v)))
}

// Compress returns data as a zlib stream.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()

	return buf.Bytes()
}
