// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// Format keys returned by Detect.
const (
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
	FormatOgg  = "ogg"
	FormatMP3  = "mp3"
)

const sniffLen = 12

// Detect identifies a container from its first bytes. It returns "" when
// nothing matches.
func Detect(head []byte) string {
	switch {
	case len(head) >= 12 && bytes.Equal(head[:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return FormatWAV
	case len(head) >= 12 && bytes.Equal(head[:4], []byte("FORM")) &&
		(bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))):
		return FormatAIFF
	case bytes.HasPrefix(head, []byte("OggS")):
		return FormatOgg
	case bytes.HasPrefix(head, []byte("ID3")):
		return FormatMP3
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return FormatMP3
	}

	return ""
}
