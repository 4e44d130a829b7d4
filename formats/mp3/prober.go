// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/id3al/audio"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	channels = 2
	bitDepth = 16
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return info(dec), nil
}

// info converts the decoded length in bytes into a duration. Length is
// negative when the source cannot seek.
func info(dec mp3Reader) audio.Info {
	rate := dec.SampleRate()
	out := audio.Info{
		Format:   goaudio.Format{NumChannels: channels, SampleRate: rate},
		BitDepth: bitDepth,
	}

	if n := dec.Length(); n > 0 && rate > 0 {
		frames := n / (channels * bitDepth / 8)
		out.Duration = time.Duration(float64(frames) / float64(rate) * float64(time.Second))
	}

	return out
}
