// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/id3al/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggvorbis decodes to float32 samples.
const bitDepth = 32

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
}

type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return info(dec), nil
}

// Length counts samples per channel and is zero when unknown.
func info(dec oggReader) audio.Info {
	rate := dec.SampleRate()
	out := audio.Info{
		Format:   goaudio.Format{NumChannels: dec.Channels(), SampleRate: rate},
		BitDepth: bitDepth,
	}

	if n := dec.Length(); n > 0 && rate > 0 {
		out.Duration = time.Duration(float64(n) / float64(rate) * float64(time.Second))
	}

	return out
}
