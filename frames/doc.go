// SPDX-License-Identifier: EPL-2.0

// Package frames decodes ID3v2 frame payloads into typed values.
//
// Decode takes a frame from an id3v2.Iterator and returns a value whose
// concrete type depends on the frame ID:
//
//	v, err := frames.Decode(f)
//	switch v := v.(type) {
//	case frames.Text:
//	    fmt.Println(frames.Title(f.ID), v.Values)
//	case frames.Picture:
//	    os.WriteFile("cover"+v.Extension(), v.Data, 0o644)
//	}
//
// Every value implements fmt.Stringer.
//
// # Text Encodings
//
// Strings are converted to UTF-8 from ISO-8859-1, UTF-16 with a byte order
// mark, UTF-16 big endian or UTF-8, as declared by the frame's encoding
// byte.
//
// # ID3v2.2
//
// Three-character IDs are mapped with Canonical before dispatch, so "TT2"
// decodes like "TIT2". The PIC frame, whose layout differs from APIC, has its
// own decoder.
package frames
