package mp3

import "errors"

var (
	ErrNotMP3File = errors.New("not an MP3 stream")
)
