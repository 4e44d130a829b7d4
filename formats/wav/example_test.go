// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/id3al/formats/wav"
	"github.com/ik5/id3al/internal/id3test"
)

func ExampleProber() {
	buf := new(bytes.Buffer)
	_ = id3test.WriteWAV16(buf, 16000, 1, make([]int16, 8000), nil)

	info, err := wav.Prober{}.Probe(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Printf("Probe error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", info.Format.SampleRate)
	fmt.Printf("Channels: %d\n", info.Format.NumChannels)
	fmt.Printf("Duration: %v\n", info.Duration)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Duration: 500ms
}
