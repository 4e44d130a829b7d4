// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/aiff"
	"github.com/ik5/id3al/audio"
)

type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Info{}, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 {
		return audio.Info{}, ErrUnsupportedAiffLayout
	}

	return audio.Info{
		Format:   *format,
		BitDepth: int(dec.BitDepth),
		Duration: duration(dec.NumSampleFrames, format.SampleRate),
	}, nil
}

func duration(frames uint32, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}
