// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads the stream parameters of MPEG audio files.
//
// This package uses github.com/hajimehoshi/go-mp3. The decoder scans the
// frames of a seekable source to learn the decoded length, which gives the
// duration. Output is always reported as 16-bit stereo because that is
// what go-mp3 produces.
//
// # Probing MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	info, err := mp3.Prober{}.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Format.SampleRate, info.Duration)
//
// A leading ID3v2 tag should be skipped before probing; seek past
// id3v2.Tag.End() first.
package mp3
