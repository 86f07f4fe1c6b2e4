// Package soundtest synthesizes small audio buffers of known duration for tests.
package soundtest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, stereo, no CRC, no padding.
const (
	MP3SampleRate      = 44100
	MP3SamplesPerFrame = 1152
	mp3FrameSize       = 417
)

var mp3FrameHeader = [4]byte{0xFF, 0xFB, 0x90, 0x00}

// MP3 returns n silent MP3 frames. Every frame carries zeroed side information
// and main data, which decodes to silence.
func MP3(n int) []byte {
	data := make([]byte, 0, n*mp3FrameSize)
	for range n {
		frame := make([]byte, mp3FrameSize)
		copy(frame, mp3FrameHeader[:])
		data = append(data, frame...)
	}
	return data
}

// MP3Duration returns the play time of MP3(n).
func MP3Duration(n int) time.Duration {
	return time.Duration(n*MP3SamplesPerFrame) * time.Second / MP3SampleRate
}

// WAV returns a mono 16-bit PCM WAV file of length d holding a constant
// sample value (-1.0 to 1.0).
func WAV(t testing.TB, d time.Duration, sampleRate int, value float64) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav fixture: %v", err)
	}

	n := int(d * time.Duration(sampleRate) / time.Second)
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(value * 32767)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write wav fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close wav fixture: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read wav fixture: %v", err)
	}
	return data
}

// WriteFile writes data to a file in a fresh temp dir and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
