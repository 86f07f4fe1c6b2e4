package sound

import "errors"

var (
	ErrEmptyBuffer = errors.New("sound buffer is empty")
	ErrProbe       = errors.New("failed to probe sound duration")
	ErrDecode      = errors.New("failed to decode sound")
)
