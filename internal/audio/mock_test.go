package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep/v2"
)

// mockOutput records device usage and renders played streamers synchronously.
type mockOutput struct {
	mu         sync.Mutex
	initErr    error
	open       bool
	inits      int
	plays      int
	closes     int
	sampleRate beep.SampleRate
	bufferSize int
	samples    [][2]float64
}

func (m *mockOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initErr != nil {
		return m.initErr
	}
	if m.open {
		return errors.New("device already acquired")
	}
	m.open = true
	m.inits++
	m.sampleRate = sampleRate
	m.bufferSize = bufferSize
	return nil
}

func (m *mockOutput) Play(streamers ...beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.plays++
	buf := make([][2]float64, 512)
	for _, s := range streamers {
		for {
			n, ok := s.Stream(buf)
			m.samples = append(m.samples, buf[:n]...)
			if !ok {
				break
			}
		}
	}
}

func (m *mockOutput) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	m.closes++
}

var errDeviceBusy = errors.New("device busy")

// constStreamer yields n frames of a constant value.
type constStreamer struct {
	value float64
	n     int
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	k := min(len(samples), c.n)
	for i := range k {
		samples[i] = [2]float64{c.value, c.value}
	}
	c.n -= k
	return k, true
}

func (c *constStreamer) Err() error { return nil }

func collect(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 100)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}
