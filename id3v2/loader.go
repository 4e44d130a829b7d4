// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"

	"github.com/ik5/id3al/internal/mmfile"
	"github.com/ik5/id3al/unsync"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Loader locates and validates tags. The zero value is ready to use.
type Loader struct {
	// Logger receives Debug diagnostics about rejected candidates. Nil
	// discards them.
	Logger *slog.Logger
	// Inflater decompresses compressed frames. Nil uses ZlibInflater.
	Inflater Inflater
	// VerifyCRC checks the extended header CRC-32 when one is present.
	VerifyCRC bool
}

func (l Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}

	return discardLogger
}

func (l Loader) inflater() Inflater {
	if l.Inflater != nil {
		return l.Inflater
	}

	return ZlibInflater{}
}

// Open maps the file at path and loads the first tag in it. The mapping is
// released before Open returns.
func (l Loader) Open(path string) (tag *Tag, err error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			tag, err = nil, fmt.Errorf("%w: %w", ErrResource, rerr)
		}
	}()

	return l.Parse(data)
}

// Read loads the first tag from r, reading it to the end.
func (l Loader) Read(r io.Reader) (*Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}

	return l.Parse(data)
}

// Parse loads the first tag in data. The returned tag does not retain data.
func (l Loader) Parse(data []byte) (*Tag, error) {
	log := l.logger()

	for off := 0; off < len(data); {
		i := bytes.Index(data[off:], headerMagic[:])
		if i < 0 {
			break
		}
		pos := off + i

		h, err := parseHeader(data[pos:])
		if err == nil {
			err = h.Validate()
		}
		if err != nil {
			log.Debug("rejected tag candidate", "offset", pos, "err", err)
			off = pos + 1
			continue
		}

		log.Debug("found tag", "offset", pos, "version", h.String(), "size", h.Size())

		tag, err := l.load(data, pos, h)
		if err != nil {
			return nil, fmt.Errorf("tag at offset %d: %w", pos, err)
		}

		return tag, nil
	}

	return nil, ErrNotFound
}

func (l Loader) load(data []byte, pos int, h Header) (*Tag, error) {
	lay, _ := layoutFor(h.Version)

	start := pos + HeaderSize
	size := int64(h.Size())
	if size > int64(len(data)-start) {
		return nil, truncated(stageFrameData, int(size), len(data)-start)
	}
	end := start + int(size)
	region := data[start:end]

	if h.Flags.Unsynchronization() && lay.wholeTagUnsync {
		region = unsync.Resynchronize(region)
	}

	tag := &Tag{
		Offset:   int64(pos),
		Header:   h,
		log:      l.logger(),
		inflater: l.inflater(),
	}

	if h.Flags.ExtendedHeader() {
		ext, err := lay.extended(region)
		if err != nil {
			return nil, err
		}
		tag.Extended = ext
		region = region[ext.Size:]
	}

	if len(region) == 0 {
		return nil, invalid(stageFrameData, "length", "> 0", 0)
	}

	if h.Flags.Footer() {
		f, err := parseFooter(data[end:])
		if err != nil {
			return nil, err
		}
		if err := f.Validate(h); err != nil {
			return nil, err
		}
		tag.Footer = &f
	}

	if l.VerifyCRC && tag.Extended != nil && tag.Extended.Flags.CRC() {
		if err := checkCRC(tag.Extended, region); err != nil {
			return nil, err
		}
	}

	tag.FrameData = bytes.Clone(region)

	return tag, nil
}

func checkCRC(ext *ExtendedHeader, frames []byte) error {
	if ext.version == 3 {
		if int64(ext.PaddingSize) > int64(len(frames)) {
			return invalid(stageExtended, "padding size", "<= "+itoa(len(frames)), ext.PaddingSize)
		}
		frames = frames[:len(frames)-int(ext.PaddingSize)]
	}

	if sum := crc32.ChecksumIEEE(frames); sum != ext.CRC {
		return invalid(stageExtended, "crc", hex32(ext.CRC), hex32(sum))
	}

	return nil
}
