// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := newMockProber(44100, 2)

	reg.Register(FormatWAV, p)

	got, ok := reg.Get(FormatWAV)
	if !ok {
		t.Fatal("Get() returned ok=false for registered format")
	}
	if got != p {
		t.Error("Get() returned a different prober")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, f := range []string{FormatOgg, FormatMP3, FormatAIFF, FormatWAV} {
		reg.Register(f, newMockProber(8000, 1))
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := reg.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVE"), FormatWAV},
		{"aiff", []byte("FORM\x00\x00\x00\x00AIFF"), FormatAIFF},
		{"aifc", []byte("FORM\x00\x00\x00\x00AIFC"), FormatAIFF},
		{"ogg", []byte("OggS\x00\x02"), FormatOgg},
		{"mp3 with tag", []byte("ID3\x04\x00"), FormatMP3},
		{"mp3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, FormatMP3},
		{"riff not wave", []byte("RIFF\x24\x00\x00\x00AVI "), ""},
		{"short riff", []byte("RIFF"), ""},
		{"empty", nil, ""},
		{"garbage", []byte("hello world!"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Detect(tt.head); got != tt.want {
				t.Errorf("Detect(% X) = %q, want %q", tt.head, got, tt.want)
			}
		})
	}
}

func TestRegistry_Probe(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	wav := newMockProber(44100, 2)
	mp3 := newMockProber(48000, 2)
	reg.Register(FormatWAV, wav)
	reg.Register(FormatMP3, mp3)

	data := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	info, err := reg.Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.Codec != FormatWAV {
		t.Errorf("Codec = %q, want %q", info.Codec, FormatWAV)
	}
	if info.Format.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.Format.SampleRate)
	}
	if wav.calls != 1 || mp3.calls != 0 {
		t.Errorf("calls wav=%d mp3=%d, want 1 and 0", wav.calls, mp3.calls)
	}
	if string(wav.first) != "RIFF" {
		t.Errorf("prober saw %q first, want reader rewound to RIFF", wav.first)
	}
}

func TestRegistry_ProbeFromOffset(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := newMockProber(8000, 1)
	reg.Register(FormatOgg, p)

	r := bytes.NewReader([]byte("junkOggS\x00\x02\x00\x00\x00\x00\x00\x00"))
	if _, err := r.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Probe(r); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if string(p.first) != "OggS" {
		t.Errorf("prober saw %q first, want OggS", p.first)
	}
}

func TestRegistry_ProbeUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(FormatWAV, newMockProber(8000, 1))

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not audio at all")},
		{"detected but unregistered", []byte("OggS\x00\x02")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := reg.Probe(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("Probe() error = %v, want ErrUnknownFormat", err)
			}
		})
	}
}

func TestRegistry_ProbeError(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := newMockProber(8000, 1)
	p.err = errors.New("broken stream")
	reg.Register(FormatMP3, p)

	_, err := reg.Probe(bytes.NewReader([]byte("ID3\x03\x00\x00\x00\x00\x00\x00")))
	if !errors.Is(err, p.err) {
		t.Fatalf("Probe() error = %v, want wrapped prober error", err)
	}
	if !strings.HasPrefix(err.Error(), "mp3: ") {
		t.Errorf("error %q should name the format", err)
	}
}

func TestRegistry_ProbeSeekFailure(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(FormatWAV, newMockProber(8000, 1))

	_, err := reg.Probe(failingSeeker{strings.NewReader("RIFF")})
	if err == nil {
		t.Fatal("Probe() error = nil, want seek error")
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	info := Info{
		Codec:    FormatWAV,
		Format:   goaudio.Format{NumChannels: 2, SampleRate: 44100},
		BitDepth: 16,
		Duration: 1500 * time.Millisecond,
	}

	want := "wav, 44100 Hz, 2 channels, 16 bit, 1.5s"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	done := make(chan struct{})

	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			key := string(rune('a' + i))
			reg.Register(key, newMockProber(8000, 1))
			reg.Get(key)
			reg.Formats()
		}()
	}
	for range 8 {
		<-done
	}

	if n := len(reg.Formats()); n != 8 {
		t.Errorf("len(Formats()) = %d, want 8", n)
	}
}
