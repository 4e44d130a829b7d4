// SPDX-License-Identifier: EPL-2.0

package id3v2

// Restrictions is the packed restrictions byte of an ID3v2.4 extended
// header.
type Restrictions byte

type (
	TagSizeRestriction       byte
	TextEncodingRestriction  byte
	TextSizeRestriction      byte
	ImageEncodingRestriction byte
	ImageSizeRestriction     byte
)

func (r Restrictions) TagSize() TagSizeRestriction { return TagSizeRestriction(r&0xC0) >> 6 }

func (r Restrictions) TextEncoding() TextEncodingRestriction {
	return TextEncodingRestriction(r&0x20) >> 5
}

func (r Restrictions) TextSize() TextSizeRestriction { return TextSizeRestriction(r&0x18) >> 3 }

func (r Restrictions) ImageEncoding() ImageEncodingRestriction {
	return ImageEncodingRestriction(r&0x04) >> 2
}

func (r Restrictions) ImageSize() ImageSizeRestriction { return ImageSizeRestriction(r & 0x03) }

func (r TagSizeRestriction) String() string {
	switch r {
	case 0:
		return "no more than 128 frames and 1 MB total tag size"
	case 1:
		return "no more than 64 frames and 128 KB total tag size"
	case 2:
		return "no more than 32 frames and 40 KB total tag size"
	default:
		return "no more than 32 frames and 4 KB total tag size"
	}
}

func (r TextEncodingRestriction) String() string {
	if r == 0 {
		return "no text encoding restrictions"
	}

	return "only ISO-8859-1 or UTF-8 text"
}

func (r TextSizeRestriction) String() string {
	switch r {
	case 0:
		return "no text size restrictions"
	case 1:
		return "no string longer than 1024 characters"
	case 2:
		return "no string longer than 128 characters"
	default:
		return "no string longer than 30 characters"
	}
}

func (r ImageEncodingRestriction) String() string {
	if r == 0 {
		return "no image encoding restrictions"
	}

	return "images are PNG or JPEG only"
}

func (r ImageSizeRestriction) String() string {
	switch r {
	case 0:
		return "no image size restrictions"
	case 1:
		return "images are 256x256 pixels or smaller"
	case 2:
		return "images are 64x64 pixels or smaller"
	default:
		return "images are exactly 64x64 pixels"
	}
}
