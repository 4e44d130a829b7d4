// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
)

// Info summarises an audio stream.
type Info struct {
	// Codec is the registry key of the format, e.g. "mp3".
	Codec string
	// Format carries the channel count and sample rate.
	Format goaudio.Format
	// BitDepth is the sample size in bits of the decoded PCM.
	BitDepth int
	Duration time.Duration
}

func (i Info) String() string {
	return fmt.Sprintf("%s, %d Hz, %d channels, %d bit, %s",
		i.Codec, i.Format.SampleRate, i.Format.NumChannels, i.BitDepth, i.Duration.Round(time.Millisecond))
}

// Prober reads the stream parameters of one container format.
type Prober interface {
	Probe(r io.ReadSeeker) (Info, error)
}

// Registry for probers by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[format] = p
}

func (r *Registry) Get(format string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[format]
	return p, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.probers))
	for k := range r.probers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Probe sniffs the format at the current position of rs and hands rs, rewound
// to that position, to the matching prober.
func (r *Registry) Probe(rs io.ReadSeeker) (Info, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rs, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Info{}, fmt.Errorf("%w", err)
	}

	format := Detect(head[:n])
	p, ok := r.Get(format)
	if !ok {
		return Info{}, fmt.Errorf("%w: % X", ErrUnknownFormat, head[:n])
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	info, err := p.Probe(rs)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", format, err)
	}
	info.Codec = format

	return info, nil
}
