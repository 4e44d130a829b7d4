// SPDX-License-Identifier: EPL-2.0

package id3al

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/id3al/audio"
	"github.com/ik5/id3al/formats/aiff"
	"github.com/ik5/id3al/formats/mp3"
	"github.com/ik5/id3al/formats/vorbis"
	"github.com/ik5/id3al/formats/wav"
	"github.com/ik5/id3al/frames"
	"github.com/ik5/id3al/id3v2"
)

// Entry is one frame of a tag together with its decoded body.
type Entry struct {
	Frame *id3v2.Frame
	// Title is the human-readable frame name, e.g. "Title/Songname".
	Title string
	// Value is the result of frames.Decode, nil when DecodeErr is set.
	Value     any
	DecodeErr error
}

// Report is what Inspect learns about one file.
type Report struct {
	Path string
	// Tag is nil when the file carries no ID3v2 tag.
	Tag     *id3v2.Tag
	Entries []Entry
	// Audio is nil when the stream could not be identified.
	Audio *audio.Info
}

// DefaultRegistry returns a registry with every bundled format prober.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.FormatWAV, wav.Prober{})
	reg.Register(audio.FormatAIFF, aiff.Prober{})
	reg.Register(audio.FormatMP3, mp3.Prober{})
	reg.Register(audio.FormatOgg, vorbis.Prober{})

	return reg
}

// Collect reads every frame of tag. On failure it returns the frames read so
// far together with the error.
func Collect(tag *id3v2.Tag) ([]*id3v2.Frame, error) {
	var out []*id3v2.Frame

	it := tag.Frames()
	for {
		f, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}
}

// Inspect loads the ID3v2 tag of the file at path, decodes its frames and
// probes the audio stream. A file without a tag is not an error. A frame
// iteration failure returns the partial report with the error.
func Inspect(path string, loader id3v2.Loader) (*Report, error) {
	rep := &Report{Path: path}

	tag, err := loader.Open(path)
	switch {
	case errors.Is(err, id3v2.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		rep.Tag = tag
	}

	var iterErr error
	if tag != nil {
		var list []*id3v2.Frame
		list, iterErr = Collect(tag)
		rep.Entries = make([]Entry, 0, len(list))
		for _, f := range list {
			e := Entry{Frame: f, Title: frames.Title(f.ID)}
			if v, err := frames.Decode(f); err != nil {
				e.DecodeErr = err
			} else {
				e.Value = v
			}
			rep.Entries = append(rep.Entries, e)
		}
	}

	info, err := probe(path, tag)
	if err != nil {
		if loader.Logger != nil {
			loader.Logger.Debug("audio probe failed", "path", path, "err", err)
		}
	} else {
		rep.Audio = &info
	}

	if iterErr != nil {
		return rep, fmt.Errorf("%s: %w", path, iterErr)
	}

	return rep, nil
}

// probe skips a tag that prepends the stream. Tags found elsewhere live
// inside a container chunk, so the whole file is probed.
func probe(path string, tag *id3v2.Tag) (audio.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	if tag != nil && tag.Offset == 0 {
		if _, err := f.Seek(tag.End(), io.SeekStart); err != nil {
			return audio.Info{}, fmt.Errorf("%w", err)
		}
	}

	return DefaultRegistry().Probe(f)
}
