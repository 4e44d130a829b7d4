// SPDX-License-Identifier: EPL-2.0

package frames

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/id3al/id3v2"
)

// Decode interprets a frame payload. The result is one of Text, UserText,
// URL, UserURL, Comment, UniqueFileID, Private, Picture, MusicCDID,
// PlayCounter, Popularimeter, AudioEncryption or Unknown. Byte slices in the
// result share memory with f.Payload.
func Decode(f *id3v2.Frame) (any, error) {
	if f.Flags.Encryption {
		return Unknown{ID: f.ID, Data: f.Payload}, nil
	}

	body := f.Payload
	if f.ID == "PIC" {
		return decodePIC(body)
	}

	id := Canonical(f.ID)
	switch id {
	case "TXXX":
		return decodeUserText(body)
	case "WXXX":
		return decodeUserURL(body)
	case "COMM", "USLT":
		return decodeComment(body)
	case "UFID":
		return decodeUFID(body)
	case "PRIV":
		return decodePrivate(body)
	case "APIC":
		return decodeAPIC(body)
	case "MCDI":
		return MusicCDID{TOC: body}, nil
	case "PCNT":
		return decodePlayCounter(body)
	case "POPM":
		return decodePopularimeter(body)
	case "AENC":
		return decodeAudioEncryption(body)
	}

	if len(id) > 0 {
		switch id[0] {
		case 'T':
			return decodeText(body)
		case 'W':
			return decodeURL(body)
		}
	}

	return Unknown{ID: f.ID, Data: body}, nil
}

func decodeText(body []byte) (Text, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return Text{}, err
	}

	t := Text{Encoding: enc}
	rest = enc.trimTerminators(rest)
	for len(rest) > 0 {
		field, next, found := enc.split(rest)

		s, err := enc.Decode(field)
		if err != nil {
			return Text{}, err
		}
		t.Values = append(t.Values, s)

		if !found {
			break
		}
		rest = next
	}

	return t, nil
}

func decodeUserText(body []byte) (UserText, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return UserText{}, err
	}

	desc, rest, err := enc.decodeField(rest)
	if err != nil {
		return UserText{}, err
	}

	value, err := enc.Decode(rest)
	if err != nil {
		return UserText{}, err
	}

	return UserText{Encoding: enc, Description: desc, Value: value}, nil
}

func decodeURL(body []byte) (URL, error) {
	u, err := ISO88591.Decode(body)

	return URL{URL: u}, err
}

func decodeUserURL(body []byte) (UserURL, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return UserURL{}, err
	}

	desc, rest, err := enc.decodeField(rest)
	if err != nil {
		return UserURL{}, err
	}

	u, err := ISO88591.Decode(rest)
	if err != nil {
		return UserURL{}, err
	}

	return UserURL{Encoding: enc, Description: desc, URL: u}, nil
}

func decodeComment(body []byte) (Comment, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return Comment{}, err
	}
	if len(rest) < 3 {
		return Comment{}, fmt.Errorf("%w: missing language", ErrShortFrame)
	}

	c := Comment{Encoding: enc}
	if c.Language, err = ISO88591.Decode(rest[:3]); err != nil {
		return Comment{}, err
	}

	if c.Description, rest, err = enc.decodeField(rest[3:]); err != nil {
		return Comment{}, err
	}

	if c.Text, err = enc.Decode(rest); err != nil {
		return Comment{}, err
	}

	return c, nil
}

func decodeUFID(body []byte) (UniqueFileID, error) {
	owner, rest, err := ISO88591.decodeField(body)
	if err != nil {
		return UniqueFileID{}, err
	}

	return UniqueFileID{Owner: owner, Identifier: rest}, nil
}

func decodePrivate(body []byte) (Private, error) {
	owner, rest, err := ISO88591.decodeField(body)
	if err != nil {
		return Private{}, err
	}

	return Private{Owner: owner, Data: rest}, nil
}

func decodeAPIC(body []byte) (Picture, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return Picture{}, err
	}

	p := Picture{Encoding: enc}
	if p.MIMEType, rest, err = ISO88591.decodeField(rest); err != nil {
		return Picture{}, err
	}

	return p.finish(rest)
}

func decodePIC(body []byte) (Picture, error) {
	enc, rest, err := readEncoding(body)
	if err != nil {
		return Picture{}, err
	}
	if len(rest) < 3 {
		return Picture{}, fmt.Errorf("%w: missing image format", ErrShortFrame)
	}

	p := Picture{Encoding: enc, MIMEType: v22ImageFormat(string(rest[:3]))}

	return p.finish(rest[3:])
}

// finish reads the fields APIC and PIC share after the image format.
func (p Picture) finish(rest []byte) (Picture, error) {
	if len(rest) < 1 {
		return Picture{}, fmt.Errorf("%w: missing picture type", ErrShortFrame)
	}
	p.Type = PictureType(rest[0])

	var err error
	if p.Description, rest, err = p.Encoding.decodeField(rest[1:]); err != nil {
		return Picture{}, err
	}
	p.Data = rest

	return p, nil
}

func decodeCounter(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("%w: %d bytes", ErrCounterOverflow, len(b))
	}

	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}

	return n, nil
}

func decodePlayCounter(body []byte) (PlayCounter, error) {
	if len(body) < 4 {
		return PlayCounter{}, fmt.Errorf("%w: counter needs 4 bytes, got %d", ErrShortFrame, len(body))
	}

	n, err := decodeCounter(body)

	return PlayCounter{Count: n}, err
}

func decodePopularimeter(body []byte) (Popularimeter, error) {
	email, rest, err := ISO88591.decodeField(body)
	if err != nil {
		return Popularimeter{}, err
	}
	if len(rest) < 1 {
		return Popularimeter{}, fmt.Errorf("%w: missing rating", ErrShortFrame)
	}

	n, err := decodeCounter(rest[1:])
	if err != nil {
		return Popularimeter{}, err
	}

	return Popularimeter{Email: email, Rating: rest[0], Count: n}, nil
}

func decodeAudioEncryption(body []byte) (AudioEncryption, error) {
	owner, rest, err := ISO88591.decodeField(body)
	if err != nil {
		return AudioEncryption{}, err
	}
	if len(rest) < 4 {
		return AudioEncryption{}, fmt.Errorf("%w: missing preview range", ErrShortFrame)
	}

	return AudioEncryption{
		Owner:         owner,
		PreviewStart:  binary.BigEndian.Uint16(rest),
		PreviewLength: binary.BigEndian.Uint16(rest[2:]),
		Info:          rest[4:],
	}, nil
}
