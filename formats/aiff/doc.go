// SPDX-License-Identifier: EPL-2.0

// Package aiff reads the stream parameters of AIFF and AIFF-C files.
//
// This package uses github.com/go-audio/aiff to parse the COMM chunk, which
// holds the channel count, the number of sample frames, the sample size and
// the sample rate (stored as an 80-bit float). AIFF files may carry an ID3v2
// tag in an "ID3 " chunk.
//
//	f, _ := os.Open("audio.aif")
//	info, err := aiff.Prober{}.Probe(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
package aiff
