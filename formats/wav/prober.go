// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/id3al/audio"
)

type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Info{}, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	format := dec.Format()
	if format == nil || format.SampleRate == 0 || format.NumChannels == 0 {
		return audio.Info{}, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNoDataChunk, err)
	}

	return summarize(*format, int(dec.BitDepth), int64(dec.PCMSize)), nil
}

// summarize derives the duration from the size of the data chunk.
func summarize(format goaudio.Format, bitDepth int, pcmBytes int64) audio.Info {
	info := audio.Info{Format: format, BitDepth: bitDepth}

	frameSize := int64(format.NumChannels * ((bitDepth + 7) / 8))
	if frameSize <= 0 || format.SampleRate <= 0 {
		return info
	}

	frames := pcmBytes / frameSize
	info.Duration = time.Duration(float64(frames) / float64(format.SampleRate) * float64(time.Second))

	return info
}
