// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads the stream parameters of Ogg Vorbis files.
//
// This package uses github.com/jfreymuth/oggvorbis. The identification
// header gives the sample rate and channel count; on a seekable source the
// last granule position gives the length in samples.
//
//	file, _ := os.Open("audio.ogg")
//	info, err := vorbis.Prober{}.Probe(file)
//
// Vorbis decodes to float32, so BitDepth is always 32.
package vorbis
