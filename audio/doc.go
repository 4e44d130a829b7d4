// SPDX-License-Identifier: EPL-2.0

// Package audio identifies the audio stream that follows (or surrounds) an
// ID3v2 tag and reports its basic parameters.
//
// # Probers
//
// A Prober reads just enough of one container format to fill an Info:
//
//	type Prober interface {
//	    Probe(r io.ReadSeeker) (Info, error)
//	}
//
// Implementations live under formats/ (wav, aiff, mp3, vorbis).
//
// # Format Registry
//
// The registry maps format keys to probers and dispatches on the first
// bytes of the stream:
//
//	registry := audio.NewRegistry()
//	registry.Register(audio.FormatWAV, wav.Prober{})
//	registry.Register(audio.FormatMP3, mp3.Prober{})
//	info, err := registry.Probe(f)
//
// Probe returns ErrUnknownFormat when Detect does not recognise the stream
// or no prober is registered for it.
package audio
