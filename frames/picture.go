// SPDX-License-Identifier: EPL-2.0

package frames

import (
	"strconv"
	"strings"
)

// PictureType is the APIC picture type byte.
type PictureType byte

var pictureTypes = [...]string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypes) {
		return pictureTypes[t]
	}

	return "Unknown (" + strconv.Itoa(int(t)) + ")"
}

// Extension returns a file name extension for the picture's MIME type.
func (p Picture) Extension() string {
	switch strings.ToLower(p.MIMEType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "-->":
		return ".url"
	}

	return ".bin"
}

// v22ImageFormat maps an ID3v2.2 PIC image format to a MIME type.
func v22ImageFormat(format string) string {
	switch strings.ToUpper(format) {
	case "JPG":
		return "image/jpeg"
	case "PNG":
		return "image/png"
	case "GIF":
		return "image/gif"
	case "BMP":
		return "image/bmp"
	case "-->":
		return "-->"
	}

	return "image/" + strings.ToLower(format)
}
