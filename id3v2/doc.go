// SPDX-License-Identifier: EPL-2.0

// Package id3v2 locates, validates and iterates ID3v2 tags.
//
// Versions 2.2, 2.3 and 2.4 are supported. A tag is a 10-byte header, an
// optional extended header, a sequence of frames followed by optional
// padding, and, in 2.4 only, an optional 10-byte footer.
//
// # Loading
//
// A Loader scans its input for the first valid tag header:
//
//	tag, err := id3v2.Loader{}.Open("song.mp3")
//	if errors.Is(err, id3v2.ErrNotFound) {
//	    // no tag, not a failure
//	}
//
// Candidates that fail validation are skipped one byte at a time, so junk
// or a stray "ID3" in front of the real tag does not stop the search. Once a
// header is accepted, any later failure aborts the load.
//
// The zero Loader discards diagnostics and inflates with ZlibInflater. Set
// Logger to see why candidates were rejected:
//
//	loader := id3v2.Loader{
//	    Logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
//	    VerifyCRC: true,
//	}
//
// # Iterating Frames
//
//	it := tag.Frames()
//	for {
//	    f, err := it.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(f.ID, len(f.Payload))
//	}
//
// Iteration ends with io.EOF at the end of the frame data or at the first
// padding byte. Errors are final.
//
// # Payloads
//
// Each Frame.Payload is a fresh slice owned by the caller. Frame-level
// unsynchronisation (2.4) is reversed and compressed frames are inflated to
// their data length. Encrypted frames are returned as stored.
//
// # Errors
//
// Failures match one of ErrNotFound, ErrMalformed, ErrTruncated, ErrCodec or
// ErrResource with errors.Is. Validation failures are *ValidationError
// values naming the stage and field:
//
//	var verr *id3v2.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Println(verr.Stage, verr.Field, verr.Expected, verr.Actual)
//	}
package id3v2
