// SPDX-License-Identifier: EPL-2.0

package unsync

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestUnsynchronize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{
			name:  "empty",
			input: []byte{},
			want:  []byte{},
		},
		{
			name:  "no sync bytes",
			input: []byte{0x01, 0x02, 0x03},
			want:  []byte{0x01, 0x02, 0x03},
		},
		{
			name:  "false sync and existing guard",
			input: []byte{0xFF, 0xF0, 0xFF, 0x00},
			want:  []byte{0xFF, 0x00, 0xF0, 0xFF, 0x00, 0x00},
		},
		{
			name:  "ff below trigger range",
			input: []byte{0xFF, 0xDF},
			want:  []byte{0xFF, 0xDF},
		},
		{
			name:  "lowest trigger",
			input: []byte{0xFF, 0xE0},
			want:  []byte{0xFF, 0x00, 0xE0},
		},
		{
			name:  "trailing ff",
			input: []byte{0x00, 0xFF},
			want:  []byte{0x00, 0xFF},
		},
		{
			name:  "run of ff",
			input: []byte{0xFF, 0xFF, 0xFF},
			want:  []byte{0xFF, 0x00, 0xFF, 0x00, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Unsynchronize(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Unsynchronize(% X) = % X, want % X", tt.input, got, tt.want)
			}
			if n := UnsyncLen(tt.input); n != len(tt.want) {
				t.Errorf("UnsyncLen(% X) = %d, want %d", tt.input, n, len(tt.want))
			}
		})
	}
}

func TestResynchronize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single byte", []byte{0xFF}, []byte{0xFF}},
		{"one guard", []byte{0x01, 0xFF, 0x00, 0x01}, []byte{0x01, 0xFF, 0x01}},
		{"guard before sync", []byte{0xFF, 0x00, 0xE0}, []byte{0xFF, 0xE0}},
		{"guarded ff 00", []byte{0xFF, 0x00, 0x00}, []byte{0xFF, 0x00}},
		{"adjacent pairs", []byte{0xFF, 0x00, 0xFF, 0x00}, []byte{0xFF, 0xFF}},
		{"ff ff 00", []byte{0xFF, 0xFF, 0x00}, []byte{0xFF, 0xFF}},
		{"no guard", []byte{0xFF, 0x01, 0x00}, []byte{0xFF, 0x01, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resynchronize(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Resynchronize(% X) = % X, want % X", tt.input, got, tt.want)
			}
			if n := ResyncLen(tt.input); n != len(tt.want) {
				t.Errorf("ResyncLen(% X) = %d, want %d", tt.input, n, len(tt.want))
			}
		})
	}
}

func TestTransforms_ZeroCopy(t *testing.T) {
	t.Parallel()

	input := []byte("plain text without sync bytes")

	if got := Resynchronize(input); &got[0] != &input[0] {
		t.Error("Resynchronize() copied data that needed no change")
	}

	if got := Unsynchronize(input); &got[0] != &input[0] {
		t.Error("Unsynchronize() copied data that needed no change")
	}

	changed := []byte{0x01, 0xFF, 0x00, 0x01}
	if got := Resynchronize(changed); &got[0] == &changed[0] {
		t.Error("Resynchronize() returned the input for data that changed")
	}
}

func TestNeeded(t *testing.T) {
	t.Parallel()

	if Needed([]byte{0x01, 0xFF, 0x7F}) {
		t.Error("Needed() = true for data without false syncs")
	}

	if !Needed([]byte{0xFF, 0xFB, 0x90}) {
		t.Error("Needed() = false for an MPEG frame sync")
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	for i := range 200 {
		data := make([]byte, rng.Intn(256))
		for j := range data {
			// Bias towards 0xFF, 0x00 and high bytes so that guards appear
			switch rng.Intn(4) {
			case 0:
				data[j] = 0xFF
			case 1:
				data[j] = 0x00
			case 2:
				data[j] = byte(0xE0 + rng.Intn(0x20))
			default:
				data[j] = byte(rng.Intn(256))
			}
		}

		guarded := Unsynchronize(data)
		if len(guarded) != UnsyncLen(data) {
			t.Fatalf("case %d: len(Unsynchronize) = %d, UnsyncLen = %d", i, len(guarded), UnsyncLen(data))
		}
		for k := 0; k < len(guarded)-1; k++ {
			if guarded[k] == 0xFF && guarded[k+1]&0xE0 == 0xE0 {
				t.Fatalf("case %d: false sync left at %d in % X", i, k, guarded)
			}
		}

		back := Resynchronize(guarded)
		if len(back) != ResyncLen(guarded) {
			t.Fatalf("case %d: len(Resynchronize) = %d, ResyncLen = %d", i, len(back), ResyncLen(guarded))
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("case %d: round trip mismatch\n got % X\nwant % X", i, back, data)
		}
	}
}

func BenchmarkResynchronize(b *testing.B) {
	data := bytes.Repeat([]byte{0x10, 0xFF, 0x00, 0xE5, 0x20}, 2048)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for range b.N {
		_ = Resynchronize(data)
	}
}

func BenchmarkUnsynchronize(b *testing.B) {
	data := bytes.Repeat([]byte{0x10, 0xFF, 0xFB, 0x90, 0x20}, 2048)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for range b.N {
		_ = Unsynchronize(data)
	}
}
