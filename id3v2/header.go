// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"fmt"
	"strconv"

	"github.com/ik5/id3al/utils"
)

// HeaderFlags is the flag byte shared by the tag header and the footer.
type HeaderFlags byte

const (
	FlagUnsynchronization HeaderFlags = 0x80
	FlagExtendedHeader    HeaderFlags = 0x40
	FlagExperimental      HeaderFlags = 0x20
	FlagFooter            HeaderFlags = 0x10
)

func (f HeaderFlags) Unsynchronization() bool { return f&FlagUnsynchronization != 0 }
func (f HeaderFlags) ExtendedHeader() bool    { return f&FlagExtendedHeader != 0 }
func (f HeaderFlags) Experimental() bool      { return f&FlagExperimental != 0 }
func (f HeaderFlags) Footer() bool            { return f&FlagFooter != 0 }

var (
	headerMagic = [3]byte{'I', 'D', '3'}
	footerMagic = [3]byte{'3', 'D', 'I'}
)

// Header is the fixed 10-byte structure that starts every tag.
type Header struct {
	Magic    [3]byte
	Version  byte
	Revision byte
	Flags    HeaderFlags
	// RawSize is the tag size as found on the wire.
	RawSize uint32
}

// Size returns the decoded tag size: the bytes after the header, excluding
// the footer.
func (h Header) Size() uint32 {
	return utils.FromSynchsafe(h.RawSize)
}

func (h Header) String() string {
	return "ID3v2." + strconv.Itoa(int(h.Version)) + "." + strconv.Itoa(int(h.Revision))
}

func parseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, truncated(stageHeader, HeaderSize, len(b))
	}

	var h Header
	copy(h.Magic[:], b[:3])
	h.Version = b[3]
	h.Revision = b[4]
	h.Flags = HeaderFlags(b[5])
	h.RawSize = utils.BigEndian32(b[6:10])

	return h, nil
}

// Validate reports the first rule the header breaks as a *ValidationError.
func (h Header) Validate() error {
	if h.Magic != headerMagic {
		return invalid(stageHeader, "magic", strconv.Quote("ID3"), strconv.Quote(string(h.Magic[:])))
	}

	if h.Version > MaxVersion {
		return invalid(stageHeader, "version", fmt.Sprintf("<= %d", MaxVersion), h.Version)
	}

	l, ok := layoutFor(h.Version)
	if !ok {
		return invalid(stageHeader, "version", fmt.Sprintf(">= %d", MinVersion), h.Version)
	}

	if bad := byte(h.Flags) & l.headerUndefined; bad != 0 {
		return invalid(stageHeader, "flags", "no bits in "+hex8(l.headerUndefined), hex8(byte(h.Flags)))
	}

	if h.Version >= 4 && !utils.IsSynchsafe(h.RawSize) {
		return invalid(stageHeader, "tag size", "synchsafe integer", hex32(h.RawSize))
	}

	return nil
}

// Valid reports whether Validate returns nil.
func (h Header) Valid() bool { return h.Validate() == nil }

// Footer is the optional copy of the header stored after the tag with the
// magic "3DI".
type Footer Header

// Size returns the decoded tag size the footer carries.
func (f Footer) Size() uint32 { return Header(f).Size() }

func parseFooter(b []byte) (Footer, error) {
	if len(b) < FooterSize {
		return Footer{}, truncated(stageFooter, FooterSize, len(b))
	}

	h, err := parseHeader(b)

	return Footer(h), err
}

// Validate checks the footer on its own and against the header it closes.
func (f Footer) Validate(h Header) error {
	switch {
	case f.Magic != footerMagic:
		return invalid(stageFooter, "magic", strconv.Quote("3DI"), strconv.Quote(string(f.Magic[:])))
	case f.Version > MaxVersion:
		return invalid(stageFooter, "version", fmt.Sprintf("<= %d", MaxVersion), f.Version)
	case byte(f.Flags)&0x0F != 0:
		return invalid(stageFooter, "flags", "no bits in 0x0F", hex8(byte(f.Flags)))
	case f.Version >= 4 && !utils.IsSynchsafe(f.RawSize):
		return invalid(stageFooter, "tag size", "synchsafe integer", hex32(f.RawSize))
	case f.Version != h.Version:
		return invalid(stageFooter, "version", h.Version, f.Version)
	case f.Revision != h.Revision:
		return invalid(stageFooter, "revision", h.Revision, f.Revision)
	case f.Flags != h.Flags:
		return invalid(stageFooter, "flags", hex8(byte(h.Flags)), hex8(byte(f.Flags)))
	case f.RawSize != h.RawSize:
		return invalid(stageFooter, "tag size", hex32(h.RawSize), hex32(f.RawSize))
	}

	return nil
}

// Valid reports whether Validate(h) returns nil.
func (f Footer) Valid(h Header) bool { return f.Validate(h) == nil }
