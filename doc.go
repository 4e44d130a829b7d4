// SPDX-License-Identifier: EPL-2.0

// Package id3al inspects the ID3v2 tag and audio stream of a file.
//
// The heavy lifting lives in the subpackages:
//   - id3v2 locates, validates and iterates ID3v2.2, v2.3 and v2.4 tags
//   - frames decodes frame bodies (text, URLs, comments, pictures, ...)
//   - audio and formats/* identify the audio stream and its parameters
//
// # Quick Start
//
//	rep, err := id3al.Inspect("song.mp3", id3v2.Loader{})
//	if err != nil {
//	    return err
//	}
//	if rep.Tag != nil {
//	    fmt.Println(rep.Tag)
//	}
//	for _, e := range rep.Entries {
//	    fmt.Printf("%s: %v\n", e.Title, e.Value)
//	}
//	if rep.Audio != nil {
//	    fmt.Println(rep.Audio)
//	}
//
// # Lower-Level Use
//
// Collect drives a tag's frame iterator to the end:
//
//	tag, err := id3v2.Loader{}.Open("song.mp3")
//	// ...
//	list, err := id3al.Collect(tag)
//
// DefaultRegistry returns an audio.Registry with the WAV, AIFF, MP3 and Ogg
// Vorbis probers registered.
//
// # Error Handling
//
// Errors wrap the sentinels of the subpackages; match them with errors.Is:
//
//	if errors.Is(err, id3v2.ErrMalformed) {
//	    // the tag violates a structural rule
//	}
package id3al
