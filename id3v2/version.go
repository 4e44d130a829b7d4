// SPDX-License-Identifier: EPL-2.0

package id3v2

const (
	// HeaderSize is the size of the tag header and of the footer.
	HeaderSize = 10
	// FooterSize is the size of the optional ID3v2.4 footer.
	FooterSize = 10

	// MinVersion and MaxVersion bound the supported major versions.
	MinVersion = 2
	MaxVersion = 4
)

// frameExtra is an optional field between a frame header and its payload.
type frameExtra int

const (
	extraGroup frameExtra = iota
	extraEncryption
	extraDataLength
)

type statusBits struct {
	tagAlter, fileAlter, readOnly byte
	undefined                     byte
}

type formatBits struct {
	grouping, compression, encryption, unsync, dataLength byte
	undefined                                             byte
	// dataLength is implied by compression (ID3v2.3 decompressed size).
	impliedDataLength bool
}

// layout holds everything that differs between major versions.
type layout struct {
	version         byte
	headerUndefined byte
	// wholeTagUnsync is set where the header flag covers the whole tag
	// including frame headers (2.2, 2.3) instead of each frame (2.4).
	wholeTagUnsync  bool
	extended        func(b []byte) (*ExtendedHeader, error)
	frameHeaderSize int
	idSize          int
	synchsafeSizes  bool
	status          statusBits
	format          formatBits
	extras          []frameExtra
}

var layouts = map[byte]*layout{
	2: {
		version: 2,
		// 0x40 is the 2.2 compression bit; no scheme was ever defined,
		// so such tags cannot be read.
		headerUndefined: 0x7F,
		wholeTagUnsync:  true,
		frameHeaderSize: 6,
		idSize:          3,
	},
	3: {
		version:         3,
		headerUndefined: 0x1F,
		wholeTagUnsync:  true,
		extended:        parseExtendedV3,
		frameHeaderSize: 10,
		idSize:          4,
		status:          statusBits{tagAlter: 0x80, fileAlter: 0x40, readOnly: 0x20, undefined: 0x1F},
		format: formatBits{
			compression:       0x80,
			encryption:        0x40,
			grouping:          0x20,
			undefined:         0x1F,
			impliedDataLength: true,
		},
		extras: []frameExtra{extraDataLength, extraEncryption, extraGroup},
	},
	4: {
		version:         4,
		headerUndefined: 0x0F,
		extended:        parseExtendedV4,
		frameHeaderSize: 10,
		idSize:          4,
		synchsafeSizes:  true,
		status:          statusBits{tagAlter: 0x40, fileAlter: 0x20, readOnly: 0x10, undefined: 0x8F},
		format: formatBits{
			grouping:    0x40,
			compression: 0x08,
			encryption:  0x04,
			unsync:      0x02,
			dataLength:  0x01,
			undefined:   0xB0,
		},
		extras: []frameExtra{extraGroup, extraEncryption, extraDataLength},
	},
}

func layoutFor(major byte) (*layout, bool) {
	l, ok := layouts[major]
	return l, ok
}

func (l *layout) frameFlags(status, format byte) FrameFlags {
	f := FrameFlags{
		TagAlterDiscard:   status&l.status.tagAlter != 0,
		FileAlterDiscard:  status&l.status.fileAlter != 0,
		ReadOnly:          status&l.status.readOnly != 0,
		Grouping:          format&l.format.grouping != 0,
		Compression:       format&l.format.compression != 0,
		Encryption:        format&l.format.encryption != 0,
		Unsynchronization: format&l.format.unsync != 0,
	}
	if l.format.impliedDataLength {
		f.DataLengthIndicator = f.Compression
	} else {
		f.DataLengthIndicator = format&l.format.dataLength != 0
	}

	return f
}
