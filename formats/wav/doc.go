// SPDX-License-Identifier: EPL-2.0

// Package wav reads the stream parameters of RIFF/WAVE files.
//
// It uses github.com/go-audio/wav to walk the chunk list: the fmt chunk
// gives the sample rate, channel count and bit depth, and the size of the
// data chunk gives the duration. WAV files may carry an ID3v2 tag in an
// "id3 " chunk; the prober ignores it, id3v2.Loader finds it by scanning.
//
//	f, _ := os.Open("audio.wav")
//	info, err := wav.Prober{}.Probe(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a WAV file
//	}
package wav
