package sound

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// go-mp3 always yields 16-bit stereo PCM.
const mp3BytesPerSample = 4

// Probe estimates the play time of an encoded buffer from its headers,
// without decoding the samples.
func Probe(data []byte, format Format) (time.Duration, error) {
	if len(data) == 0 {
		return 0, ErrEmptyBuffer
	}

	var (
		d   time.Duration
		err error
	)
	switch format {
	case FormatMP3:
		d, err = probeMP3(data)
	case FormatWAV:
		d, err = probeWAV(data)
	case FormatVorbis:
		d, err = probeVorbis(data)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return 0, fmt.Errorf("%w (%s): %v", ErrProbe, format, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w (%s): no audio frames", ErrProbe, format)
	}
	return d, nil
}

// probeMP3 walks the frame headers; go-mp3 computes the PCM length while
// seeking over the frames of a seekable source.
func probeMP3(data []byte) (time.Duration, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	rate := int64(dec.SampleRate())
	if rate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %d", rate)
	}
	frames := dec.Length() / mp3BytesPerSample
	return time.Duration(frames) * time.Second / time.Duration(rate), nil
}

// probeWAV reads the format chunk and the size of the data chunk.
func probeWAV(data []byte) (time.Duration, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return 0, errors.New("invalid wav header")
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, err
	}

	frameSize := int64(dec.NumChans) * int64(dec.BitDepth) / 8
	if dec.SampleRate == 0 || frameSize <= 0 {
		return 0, fmt.Errorf("invalid wav format: %d Hz, %d channels, %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	frames := int64(dec.PCMSize) / frameSize
	return time.Duration(frames) * time.Second / time.Duration(dec.SampleRate), nil
}

func probeVorbis(data []byte) (time.Duration, error) {
	samples, format, err := oggvorbis.GetLength(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	if format.SampleRate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %d", format.SampleRate)
	}
	return time.Duration(samples) * time.Second / time.Duration(format.SampleRate), nil
}
