// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/id3al/formats/aiff"
	"github.com/ik5/id3al/internal/id3test"
)

func ExampleProber() {
	buf := new(bytes.Buffer)
	_ = id3test.WriteAIFF16(buf, 22050, 2, make([]int16, 44100), nil)

	info, err := aiff.Prober{}.Probe(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %v\n", info.Format.SampleRate, info.Format.NumChannels, info.Duration)
	// Output: 22050 Hz, 2 channels, 1s
}
