// SPDX-License-Identifier: EPL-2.0

package frames

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Text is a text information frame (T000-TZZZ except TXXX). ID3v2.4 allows
// several values separated by terminators.
type Text struct {
	Encoding Encoding
	Values   []string
}

func (t Text) String() string { return strings.Join(t.Values, " / ") }

// UserText is a TXXX frame.
type UserText struct {
	Encoding    Encoding
	Description string
	Value       string
}

func (t UserText) String() string { return t.Description + " - " + t.Value }

// URL is a URL link frame (W000-WZZZ except WXXX).
type URL struct {
	URL string
}

func (u URL) String() string { return u.URL }

// UserURL is a WXXX frame.
type UserURL struct {
	Encoding    Encoding
	Description string
	URL         string
}

func (u UserURL) String() string { return u.Description + " - " + u.URL }

// Comment is a COMM or USLT frame.
type Comment struct {
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

func (c Comment) String() string {
	if c.Description == "" {
		return "[" + c.Language + "] " + c.Text
	}

	return "[" + c.Language + "] " + c.Description + " - " + c.Text
}

// UniqueFileID is a UFID frame.
type UniqueFileID struct {
	Owner      string
	Identifier []byte
}

func (u UniqueFileID) String() string { return u.Owner + " - " + hexString(u.Identifier) }

// Private is a PRIV frame.
type Private struct {
	Owner string
	Data  []byte
}

func (p Private) String() string { return p.Owner + " - " + hexString(p.Data) }

// Picture is an APIC frame or an ID3v2.2 PIC frame.
type Picture struct {
	Encoding    Encoding
	MIMEType    string
	Type        PictureType
	Description string
	Data        []byte
}

func (p Picture) String() string {
	return fmt.Sprintf("%s, %s, %q, %d bytes", p.MIMEType, p.Type, p.Description, len(p.Data))
}

// MusicCDID is an MCDI frame holding a CD table of contents.
type MusicCDID struct {
	TOC []byte
}

func (m MusicCDID) String() string { return hexString(m.TOC) }

// PlayCounter is a PCNT frame.
type PlayCounter struct {
	Count uint64
}

func (p PlayCounter) String() string { return fmt.Sprintf("%d", p.Count) }

// Popularimeter is a POPM frame. Count is zero when omitted.
type Popularimeter struct {
	Email  string
	Rating byte
	Count  uint64
}

func (p Popularimeter) String() string {
	return fmt.Sprintf("%s - rating %d/255, %d plays", p.Email, p.Rating, p.Count)
}

// AudioEncryption is an AENC frame.
type AudioEncryption struct {
	Owner         string
	PreviewStart  uint16
	PreviewLength uint16
	Info          []byte
}

func (a AudioEncryption) String() string {
	return fmt.Sprintf("%s - preview %d+%d frames - %s", a.Owner, a.PreviewStart, a.PreviewLength, hexString(a.Info))
}

// Unknown holds the payload of frames without a decoder, and of encrypted
// frames.
type Unknown struct {
	ID   string
	Data []byte
}

func (u Unknown) String() string { return fmt.Sprintf("%d bytes", len(u.Data)) }

// hexString prints binary data in groups of four hex digits.
func hexString(b []byte) string {
	s := hex.EncodeToString(b)

	var sb strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i:min(i+4, len(s))])
	}

	return sb.String()
}
