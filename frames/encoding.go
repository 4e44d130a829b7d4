// SPDX-License-Identifier: EPL-2.0

package frames

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that starts most text-bearing frames.
type Encoding byte

const (
	ISO88591 Encoding = iota
	UTF16             // UTF-16 with byte order mark
	UTF16BE           // UTF-16 big endian without byte order mark
	UTF8
)

func (e Encoding) String() string {
	switch e {
	case ISO88591:
		return "ISO 8859-1"
	case UTF16:
		return "UTF-16 with BOM"
	case UTF16BE:
		return "UTF-16 without BOM"
	case UTF8:
		return "UTF-8"
	}

	return fmt.Sprintf("Unknown (%d)", byte(e))
}

// Valid reports whether e is one of the four defined encodings.
func (e Encoding) Valid() bool { return e <= UTF8 }

func (e Encoding) wide() bool { return e == UTF16 || e == UTF16BE }

func (e Encoding) decoder() *encoding.Decoder {
	switch e {
	case UTF16:
		// writers that omit the BOM almost always mean big endian
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case UTF8:
		return unicode.UTF8.NewDecoder()
	default:
		return charmap.ISO8859_1.NewDecoder()
	}
}

// Decode converts b to a UTF-8 string. Trailing terminators are dropped.
func (e Encoding) Decode(b []byte) (string, error) {
	if !e.Valid() {
		return "", fmt.Errorf("%w: encoding byte %d", ErrBadEncoding, byte(e))
	}

	b = e.trimTerminators(b)
	if len(b) == 0 {
		return "", nil
	}
	if e.wide() && len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd length %d for %s", ErrBadEncoding, len(b), e)
	}

	out, err := e.decoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}

	return string(out), nil
}

func (e Encoding) terminator() []byte {
	if e.wide() {
		return []byte{0, 0}
	}

	return []byte{0}
}

// split cuts b at the first terminator. Without one, the whole of b is the
// field and found is false.
func (e Encoding) split(b []byte) (field, rest []byte, found bool) {
	if !e.wide() {
		return bytes.Cut(b, []byte{0})
	}

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], b[i+2:], true
		}
	}

	return b, nil, false
}

func (e Encoding) trimTerminators(b []byte) []byte {
	t := e.terminator()
	for len(b) >= len(t) && bytes.HasSuffix(b, t) {
		if e.wide() && len(b)%2 != 0 {
			break
		}
		b = b[:len(b)-len(t)]
	}

	return b
}

// decodeField reads one terminated string and returns the bytes after it.
func (e Encoding) decodeField(b []byte) (string, []byte, error) {
	field, rest, _ := e.split(b)
	s, err := e.Decode(field)

	return s, rest, err
}

func readEncoding(body []byte) (Encoding, []byte, error) {
	if len(body) < 1 {
		return 0, nil, fmt.Errorf("%w: missing encoding byte", ErrShortFrame)
	}

	enc := Encoding(body[0])
	if !enc.Valid() {
		return 0, nil, fmt.Errorf("%w: encoding byte %d", ErrBadEncoding, body[0])
	}

	return enc, body[1:], nil
}
