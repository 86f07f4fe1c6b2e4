package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskbreak/internal/soundtest"
)

func TestDefault(t *testing.T) {
	clip, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultName, clip.Name())
	assert.Equal(t, FormatWAV, clip.Format())
	assert.Equal(t, 3*time.Second, clip.Duration())
	assert.Equal(t, len(defaultAlarm), clip.Size())
}

func TestNew_MP3(t *testing.T) {
	clip, err := New("silence.mp3", soundtest.MP3(8))
	require.NoError(t, err)

	assert.Equal(t, FormatMP3, clip.Format())
	assert.InDelta(t, soundtest.MP3Duration(8), clip.Duration(), float64(time.Millisecond))
}

func TestNew_WAV(t *testing.T) {
	clip, err := New("tone.wav", soundtest.WAV(t, 500*time.Millisecond, 22050, 0.5))
	require.NoError(t, err)

	assert.Equal(t, FormatWAV, clip.Format())
	assert.Equal(t, 500*time.Millisecond, clip.Duration())
}

func TestNew_EmptyBuffer(t *testing.T) {
	_, err := New("empty.mp3", nil)
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = New("empty.mp3", []byte{})
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestNew_NotAudio(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("this is definitely not an mp3 file\n")},
		{"truncated wav", []byte("RIFF\x00\x00\x00\x00WAVE")},
		{"bogus ogg", []byte("OggS and then some garbage")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.name, tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProbe)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.mp3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := soundtest.WriteFile(t, "empty.mp3", nil)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestLoad_TextFile(t *testing.T) {
	path := soundtest.WriteFile(t, "notes.txt", []byte("remember to stand up\n"))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrProbe)
}

func TestLoad_MatchesEmbeddedDefault(t *testing.T) {
	embedded, err := Default()
	require.NoError(t, err)

	path := soundtest.WriteFile(t, "alarm.wav", embedded.Bytes())
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, loaded.Name())
	assert.Equal(t, embedded.Format(), loaded.Format())
	assert.Equal(t, embedded.Duration(), loaded.Duration())
}

func TestLoad_MP3(t *testing.T) {
	path := soundtest.WriteFile(t, "silence.mp3", soundtest.MP3(20))

	clip, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, soundtest.MP3Duration(20), clip.Duration(), float64(time.Millisecond))
}

func TestClip_DecodeIsRepeatable(t *testing.T) {
	data := soundtest.WAV(t, 250*time.Millisecond, 22050, 0.25)
	original := bytes.Clone(data)

	clip, err := New("tone.wav", data)
	require.NoError(t, err)

	var counts []int
	for range 3 {
		streamer, format, err := clip.Decode()
		require.NoError(t, err)
		assert.Equal(t, beep.SampleRate(22050), format.SampleRate)

		counts = append(counts, drain(streamer))
		require.NoError(t, streamer.Err())
		require.NoError(t, streamer.Close())
	}

	want := format22050(250 * time.Millisecond)
	assert.Equal(t, []int{want, want, want}, counts)
	assert.Equal(t, original, data, "decoding must not modify the buffer")
}

func TestClip_DecodeMP3(t *testing.T) {
	clip, err := New("silence.mp3", soundtest.MP3(4))
	require.NoError(t, err)

	streamer, format, err := clip.Decode()
	require.NoError(t, err)
	defer func() { _ = streamer.Close() }()

	assert.Equal(t, beep.SampleRate(soundtest.MP3SampleRate), format.SampleRate)
	assert.Positive(t, drain(streamer))
}

func TestClip_BytesIsCopy(t *testing.T) {
	clip, err := New("silence.mp3", soundtest.MP3(2))
	require.NoError(t, err)

	b := clip.Bytes()
	b[0] = 0
	assert.Equal(t, byte(0xFF), clip.Bytes()[0])
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func format22050(d time.Duration) int {
	return beep.SampleRate(22050).N(d)
}
