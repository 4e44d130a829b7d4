// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/ik5/id3al/unsync"
	"github.com/ik5/id3al/utils"
)

// Iterator walks the frames of a tag. It is not safe for concurrent use.
type Iterator struct {
	tag      *Tag
	layout   *layout
	pos      int
	err      error
	log      *slog.Logger
	inflater Inflater
}

// Offset returns the position of the next frame within the frame data.
func (it *Iterator) Offset() int { return it.pos }

// Next decodes the frame at the cursor and advances past it. It returns
// io.EOF once the frame data or padding is reached. Any error is final: later
// calls return it again.
func (it *Iterator) Next() (*Frame, error) {
	if it.err != nil {
		return nil, it.err
	}

	f, err := it.next()
	if err != nil {
		it.err = err
		if err != io.EOF {
			it.log.Debug("frame iteration stopped", "offset", it.pos, "err", err)
		}
		return nil, err
	}

	return f, nil
}

func (it *Iterator) next() (*Frame, error) {
	l := it.layout
	data := it.tag.FrameData
	rest := data[it.pos:]

	if len(rest) < l.frameHeaderSize {
		return nil, io.EOF
	}
	if rest[0] == 0 {
		return nil, io.EOF
	}

	h, err := parseFrameHeader(rest, l)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	if uint64(h.Size) > uint64(len(rest)-l.frameHeaderSize) {
		return nil, invalid(stageFrameData, "frame "+strconv.Quote(h.ID)+" size",
			"<= "+itoa(len(rest)-l.frameHeaderSize), h.Size)
	}

	body := rest[l.frameHeaderSize : l.frameHeaderSize+int(h.Size)]
	f := &Frame{FrameHeader: h, Offset: it.pos}

	n, err := it.readExtras(f, body)
	if err != nil {
		return nil, err
	}

	payload := body[n:]
	owned := false
	if !l.wholeTagUnsync && (h.Flags.Unsynchronization || it.tag.Header.Flags.Unsynchronization()) {
		p := unsync.Resynchronize(payload)
		owned = len(p) != len(payload)
		payload = p
	}

	switch {
	case h.Flags.Compression && !h.Flags.Encryption:
		out, err := it.inflater.Inflate(payload, int(f.DataLength))
		if err != nil {
			if !errors.Is(err, ErrCodec) {
				err = fmt.Errorf("%w: %w", ErrCodec, err)
			}
			return nil, fmt.Errorf("frame %q at offset %d: %w", h.ID, it.pos, err)
		}
		payload = out
	case !owned:
		payload = bytes.Clone(payload)
	}
	f.Payload = payload

	it.pos += l.frameHeaderSize + int(h.Size)

	return f, nil
}

// readExtras reads the optional fields in front of the payload and returns
// how many bytes they took.
func (it *Iterator) readExtras(f *Frame, body []byte) (int, error) {
	n := 0
	need := func(k int) error {
		if len(body)-n < k {
			return invalid(stageFrameData, "frame "+strconv.Quote(f.ID)+" size", ">= "+itoa(n+k), len(body))
		}
		return nil
	}

	for _, x := range it.layout.extras {
		switch x {
		case extraGroup:
			if !f.Flags.Grouping {
				continue
			}
			if err := need(1); err != nil {
				return 0, err
			}
			f.GroupID = body[n]
			n++
		case extraEncryption:
			if !f.Flags.Encryption {
				continue
			}
			if err := need(1); err != nil {
				return 0, err
			}
			f.EncryptionMethod = body[n]
			n++
		case extraDataLength:
			if !f.Flags.DataLengthIndicator {
				continue
			}
			if err := need(4); err != nil {
				return 0, err
			}
			raw := utils.BigEndian32(body[n:])
			if it.layout.synchsafeSizes {
				if !utils.IsSynchsafe(raw) {
					return 0, invalid(stageFrameData, "data length indicator", "synchsafe integer", hex32(raw))
				}
				raw = utils.FromSynchsafe(raw)
			}
			f.DataLength = raw
			n += 4
		}
	}

	return n, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
