// SPDX-License-Identifier: EPL-2.0

// Package unsync implements the ID3v2 unsynchronisation scheme.
//
// MPEG decoders look for a frame sync made of 0xFF followed by a byte with
// its top three bits set. Tag data must never contain such a pattern, so
// writers insert a 0x00 guard byte after every 0xFF that is followed by
// 0x00 or by a byte >= 0xE0. Readers undo the insertion before the data is
// interpreted.
//
// # Resynchronisation
//
//	payload := unsync.Resynchronize(raw)
//
// Every 0xFF 0x00 pair loses its 0x00, left to right, pairs never overlap.
//
// # Unsynchronisation
//
//	guarded := unsync.Unsynchronize(data)
//
// # Aliasing
//
// Both transforms return the input slice itself when nothing has to change.
// Callers must not write to the result unless they own the input too:
//
//	out := unsync.Resynchronize(in)
//	if len(out) == len(in) {
//	    out = bytes.Clone(out) // out aliases in
//	}
//
// ResyncLen and UnsyncLen predict the output length without allocating.
package unsync
