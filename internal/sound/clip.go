package sound

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Clip is an encoded alert sound together with its probed play time.
type Clip struct {
	name     string
	data     []byte
	format   Format
	duration time.Duration
}

// New builds a clip from encoded bytes. The format is sniffed and the
// duration probed once; both fail for empty or undecodable input.
func New(name string, data []byte) (*Clip, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyBuffer)
	}

	format := Sniff(data)
	duration, err := Probe(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Clip{
		name:     name,
		data:     data,
		format:   format,
		duration: duration,
	}, nil
}

// Load reads the whole file at path into memory and builds a clip from it.
func Load(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file: %w", err)
	}
	return New(path, data)
}

// Name returns the file path, or the embedded asset name.
func (c *Clip) Name() string { return c.name }

// Format returns the detected format.
func (c *Clip) Format() Format { return c.format }

// Duration returns the probed play time.
func (c *Clip) Duration() time.Duration { return c.duration }

// Size returns the encoded size in bytes.
func (c *Clip) Size() int { return len(c.data) }

// Bytes returns a copy of the encoded data.
func (c *Clip) Bytes() []byte { return bytes.Clone(c.data) }

// Decode returns a new decoded stream over the clip. Each call gets its own
// read position; the underlying bytes are shared, not copied.
func (c *Clip) Decode() (beep.StreamSeekCloser, beep.Format, error) {
	r := readSeekNopCloser{bytes.NewReader(c.data)}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch c.format {
	case FormatWAV:
		streamer, format, err = wav.Decode(r)
	case FormatVorbis:
		streamer, format, err = vorbis.Decode(r)
	default:
		streamer, format, err = mp3.Decode(r)
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w %s: %v", ErrDecode, c.name, err)
	}

	return streamer, format, nil
}

// readSeekNopCloser keeps the Seek method visible to decoders that check for
// io.Seeker, which io.NopCloser would hide.
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }
