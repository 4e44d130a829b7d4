// SPDX-License-Identifier: EPL-2.0

package id3test

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// WriteAIFF16 writes a 16-bit PCM AIFF file. When tag is not empty it is
// stored in an "ID3 " chunk after the sound data.
func WriteAIFF16(w io.Writer, sampleRate, channels int, samples []int16, tag []byte) error {
	comm := make([]byte, 0, 26)
	comm = append(comm, "COMM"...)
	comm = binary.BigEndian.AppendUint32(comm, 18)
	comm = binary.BigEndian.AppendUint16(comm, uint16(channels))
	comm = binary.BigEndian.AppendUint32(comm, uint32(len(samples)/channels))
	comm = binary.BigEndian.AppendUint16(comm, 16)
	comm = append(comm, extended(uint64(sampleRate))...)

	ssndSize := 8 + len(samples)*2
	ssnd := make([]byte, 0, 8+ssndSize)
	ssnd = append(ssnd, "SSND"...)
	ssnd = binary.BigEndian.AppendUint32(ssnd, uint32(ssndSize))
	ssnd = binary.BigEndian.AppendUint32(ssnd, 0) // offset
	ssnd = binary.BigEndian.AppendUint32(ssnd, 0) // block size
	for _, s := range samples {
		ssnd = binary.BigEndian.AppendUint16(ssnd, uint16(s))
	}

	var id3 []byte
	if len(tag) > 0 {
		id3 = append(id3, "ID3 "...)
		id3 = binary.BigEndian.AppendUint32(id3, uint32(len(tag)))
		id3 = append(id3, tag...)
		if len(tag)%2 == 1 {
			id3 = append(id3, 0)
		}
	}

	form := make([]byte, 0, 12)
	form = append(form, "FORM"...)
	form = binary.BigEndian.AppendUint32(form, uint32(4+len(comm)+len(ssnd)+len(id3)))
	form = append(form, "AIFF"...)

	for _, chunk := range [][]byte{form, comm, ssnd, id3} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended
// precision float.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	shift := bits.LeadingZeros64(v)
	exp := uint16(16383 + 63 - shift)
	binary.BigEndian.PutUint16(out[0:2], exp)
	binary.BigEndian.PutUint64(out[2:10], v<<shift)

	return out
}
