// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/id3al/utils"
)

// ExtendedFlags holds the extended header flags, normalised to the ID3v2.4
// bit positions. An ID3v2.3 CRC flag is reported as ExtCRC.
type ExtendedFlags byte

const (
	ExtUpdate       ExtendedFlags = 0x40
	ExtCRC          ExtendedFlags = 0x20
	ExtRestrictions ExtendedFlags = 0x10

	extUndefinedV4 = 0x8F
	extCRCv3       = 0x8000
)

func (f ExtendedFlags) Update() bool       { return f&ExtUpdate != 0 }
func (f ExtendedFlags) CRC() bool          { return f&ExtCRC != 0 }
func (f ExtendedFlags) Restrictions() bool { return f&ExtRestrictions != 0 }

// ExtendedHeader is the optional structure that follows the tag header.
type ExtendedHeader struct {
	// RawSize is the size field as found on the wire.
	RawSize uint32
	// Size is the number of bytes the extended header occupies.
	Size uint32
	// FlagSize is the number of flag bytes: 1 in ID3v2.4, 2 in ID3v2.3.
	FlagSize byte
	Flags    ExtendedFlags
	// FlagData is everything after the size field (ID3v2.3) or after the
	// flag byte (ID3v2.4).
	FlagData []byte

	CRC          uint32
	Restrictions Restrictions
	// PaddingSize is only stored by ID3v2.3.
	PaddingSize uint32

	version byte
}

// Version returns the major version of the tag the header belongs to.
func (e *ExtendedHeader) Version() byte { return e.version }

func parseExtendedV3(b []byte) (*ExtendedHeader, error) {
	if len(b) < 10 {
		return nil, truncated(stageExtended, 10, len(b))
	}

	raw := utils.BigEndian32(b)
	e := &ExtendedHeader{
		RawSize:  raw,
		Size:     raw + 4,
		FlagSize: 2,
		version:  3,
	}
	if raw > uint32(len(b)-4) {
		return nil, truncated(stageExtended, int(raw)+4, len(b))
	}

	e.FlagData = bytes.Clone(b[4:e.Size])

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if binary.BigEndian.Uint16(e.FlagData)&extCRCv3 != 0 {
		e.Flags |= ExtCRC
		e.CRC = utils.BigEndian32(e.FlagData[6:10])
	}
	e.PaddingSize = utils.BigEndian32(e.FlagData[2:6])

	return e, nil
}

func parseExtendedV4(b []byte) (*ExtendedHeader, error) {
	if len(b) < 6 {
		return nil, truncated(stageExtended, 6, len(b))
	}

	raw := utils.BigEndian32(b)
	e := &ExtendedHeader{
		RawSize:  raw,
		Size:     utils.FromSynchsafe(raw),
		FlagSize: b[4],
		Flags:    ExtendedFlags(b[5]),
		version:  4,
	}
	if e.Size < 6 {
		return nil, invalid(stageExtended, "size", ">= 6", e.Size)
	}
	if e.Size > uint32(len(b)) {
		return nil, truncated(stageExtended, int(e.Size), len(b))
	}

	e.FlagData = bytes.Clone(b[6:e.Size])

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, e.walkV4(func(flag ExtendedFlags, body []byte) error {
		switch flag {
		case ExtCRC:
			e.CRC = uint32(body[0])<<28 | utils.FromSynchsafe(utils.BigEndian32(body[1:5]))
		case ExtRestrictions:
			e.Restrictions = Restrictions(body[0])
		}
		return nil
	})
}

// walkV4 calls fn for every set flag, in wire order, with the flag's data.
func (e *ExtendedHeader) walkV4(fn func(flag ExtendedFlags, body []byte) error) error {
	data := e.FlagData
	for _, flag := range [...]ExtendedFlags{ExtUpdate, ExtCRC, ExtRestrictions} {
		if e.Flags&flag == 0 {
			continue
		}

		if len(data) < 1 {
			return invalid(stageExtended, "flag data", "length byte", "end of extended header")
		}
		n := int(data[0])
		if len(data) < 1+n {
			return invalid(stageExtended, "flag data", fmt.Sprintf("%d bytes", n), fmt.Sprintf("%d bytes", len(data)-1))
		}

		if err := fn(flag, data[1:1+n]); err != nil {
			return err
		}
		data = data[1+n:]
	}

	return nil
}

// Validate reports the first rule the extended header breaks.
func (e *ExtendedHeader) Validate() error {
	switch e.version {
	case 3:
		return e.validateV3()
	case 4:
		return e.validateV4()
	}

	return invalid(stageExtended, "version", "3 or 4", e.version)
}

// Valid reports whether Validate returns nil.
func (e *ExtendedHeader) Valid() bool { return e.Validate() == nil }

func (e *ExtendedHeader) validateV3() error {
	if e.RawSize != 6 && e.RawSize != 10 {
		return invalid(stageExtended, "size", "6 or 10", e.RawSize)
	}
	if len(e.FlagData) < int(e.RawSize) {
		return invalid(stageExtended, "size", e.RawSize, len(e.FlagData))
	}

	flags := binary.BigEndian.Uint16(e.FlagData)
	if flags&^extCRCv3 != 0 {
		return invalid(stageExtended, "flags", "no bits in 0x7FFF", fmt.Sprintf("0x%04X", flags))
	}

	want := uint32(6)
	if flags&extCRCv3 != 0 {
		want = 10
	}
	if e.RawSize != want {
		return invalid(stageExtended, "size", want, e.RawSize)
	}

	return nil
}

func (e *ExtendedHeader) validateV4() error {
	if !utils.IsSynchsafe(e.RawSize) {
		return invalid(stageExtended, "size", "synchsafe integer", hex32(e.RawSize))
	}
	if e.FlagSize != 1 {
		return invalid(stageExtended, "flag size", 1, e.FlagSize)
	}
	if byte(e.Flags)&extUndefinedV4 != 0 {
		return invalid(stageExtended, "flags", "no bits in 0x8F", hex8(byte(e.Flags)))
	}

	return e.walkV4(func(flag ExtendedFlags, body []byte) error {
		switch flag {
		case ExtUpdate:
			if len(body) != 0 {
				return invalid(stageExtended, "update length", 0, len(body))
			}
		case ExtCRC:
			if len(body) != 5 {
				return invalid(stageExtended, "crc length", 5, len(body))
			}
			for _, c := range body {
				if c&0x80 != 0 {
					return invalid(stageExtended, "crc", "synchsafe bytes", fmt.Sprintf("% X", body))
				}
			}
		case ExtRestrictions:
			if len(body) != 1 {
				return invalid(stageExtended, "restrictions length", 1, len(body))
			}
		}
		return nil
	})
}
