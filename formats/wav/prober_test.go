// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/id3al/internal/id3test"
)

func wavFile(t *testing.T, sampleRate, channels int, samples []int16, tag []byte) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := id3test.WriteWAV16(buf, sampleRate, channels, samples, tag); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return buf.Bytes()
}

func TestProber_Mono(t *testing.T) {
	t.Parallel()

	data := wavFile(t, 44100, 1, make([]int16, 44100), nil)

	info, err := Prober{}.Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.Format.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.Format.SampleRate)
	}
	if info.Format.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", info.Format.NumChannels)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
	if info.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", info.Duration)
	}
}

func TestProber_StereoWithTagChunk(t *testing.T) {
	t.Parallel()

	tag := id3test.Tag(4, 0, 8, id3test.Frame4("TIT2", 0, 0, id3test.TextBody(id3test.UTF8, "Song")))
	data := wavFile(t, 8000, 2, make([]int16, 8000), tag)

	info, err := Prober{}.Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.Format.NumChannels != 2 {
		t.Errorf("NumChannels = %d, want 2", info.Format.NumChannels)
	}
	if info.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", info.Duration)
	}
}

func TestProber_NotWAV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is definitely not a WAV file")},
		{"empty", nil},
		{"riff without wave", []byte("RIFF\x04\x00\x00\x00AVI ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Prober{}.Probe(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("Probe() error = nil, want error")
			}
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Probe() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   goaudio.Format
		bitDepth int
		pcm      int64
		want     time.Duration
	}{
		{"16-bit stereo", goaudio.Format{NumChannels: 2, SampleRate: 48000}, 16, 192000, time.Second},
		{"24-bit mono", goaudio.Format{NumChannels: 1, SampleRate: 8000}, 24, 12000, 500 * time.Millisecond},
		{"8-bit mono", goaudio.Format{NumChannels: 1, SampleRate: 11025}, 8, 11025, time.Second},
		{"no channels", goaudio.Format{SampleRate: 8000}, 16, 1000, 0},
		{"no rate", goaudio.Format{NumChannels: 1}, 16, 1000, 0},
		{"empty data", goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := summarize(tt.format, tt.bitDepth, tt.pcm)
			if info.Duration != tt.want {
				t.Errorf("Duration = %v, want %v", info.Duration, tt.want)
			}
			if info.BitDepth != tt.bitDepth {
				t.Errorf("BitDepth = %d, want %d", info.BitDepth, tt.bitDepth)
			}
		})
	}
}

func BenchmarkProber(b *testing.B) {
	buf := new(bytes.Buffer)
	if err := id3test.WriteWAV16(buf, 44100, 2, make([]int16, 4096), nil); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := (Prober{}).Probe(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
