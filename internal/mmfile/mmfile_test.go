// SPDX-License-Identifier: EPL-2.0

package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "small", data: []byte("ID3\x04\x00\x00\x00\x00\x00\x00")},
		{name: "page sized", data: bytes.Repeat([]byte{0xAB}, 4096+17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "file.bin")
			if err := os.WriteFile(path, tt.data, 0o600); err != nil {
				t.Fatal(err)
			}

			got, release, err := Map(path)
			if err != nil {
				t.Fatalf("Map() error = %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("Map() returned %d bytes, want %d", len(got), len(tt.data))
			}
			if err := release(); err != nil {
				t.Errorf("release() error = %v", err)
			}
		})
	}
}

func TestMapMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := Map(filepath.Join(t.TempDir(), "missing"))
	if !os.IsNotExist(err) {
		t.Errorf("Map() error = %v, want not-exist", err)
	}
}
