// SPDX-License-Identifier: EPL-2.0

package id3test

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a 16-bit PCM WAV file. When tag is not empty it is
// stored in an "id3 " chunk after the data chunk.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16, tag []byte) error {
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)

	tagChunk := 0
	if len(tag) > 0 {
		tagChunk = 8 + len(tag) + len(tag)%2
	}
	riffSize := 36 + dataSize + uint32(tagChunk)

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	pcm := make([]byte, 0, dataSize)
	for _, s := range samples {
		pcm = binary.LittleEndian.AppendUint16(pcm, uint16(s))
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	if tagChunk == 0 {
		return nil
	}

	chunk := make([]byte, 8, tagChunk)
	copy(chunk, "id3 ")
	binary.LittleEndian.PutUint32(chunk[4:], uint32(len(tag)))
	chunk = append(chunk, tag...)
	if len(tag)%2 == 1 {
		chunk = append(chunk, 0)
	}
	if _, err := w.Write(chunk); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
