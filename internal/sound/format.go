package sound

import "bytes"

// Format identifies the container/codec of a sound buffer.
type Format int

const (
	FormatMP3 Format = iota
	FormatWAV
	FormatVorbis
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "mp3"
	case FormatWAV:
		return "wav"
	case FormatVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// Sniff detects the format from the leading bytes. Anything that is neither
// RIFF/WAVE nor an Ogg stream is treated as MP3, which has no reliable magic
// when the ID3 tag is absent.
func Sniff(data []byte) Format {
	switch {
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWAV
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatVorbis
	default:
		return FormatMP3
	}
}
