package audio

import (
	"errors"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
)

// mockProber reports a fixed Info and records what it was given.
type mockProber struct {
	info Info
	err  error

	calls int
	first []byte // bytes at the reader position on entry
}

func newMockProber(rate, channels int) *mockProber {
	return &mockProber{info: Info{
		Format:   goaudio.Format{NumChannels: channels, SampleRate: rate},
		BitDepth: 16,
		Duration: time.Second,
	}}
}

func (m *mockProber) Probe(r io.ReadSeeker) (Info, error) {
	m.calls++

	m.first = make([]byte, 4)
	n, _ := io.ReadFull(r, m.first)
	m.first = m.first[:n]

	if m.err != nil {
		return Info{}, m.err
	}

	return m.info, nil
}

// failingSeeker fails every Seek.
type failingSeeker struct {
	io.Reader
}

func (failingSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek failed")
}
