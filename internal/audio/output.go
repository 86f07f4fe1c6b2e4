package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is an audio output device. Init acquires the device, Play queues
// streamers for asynchronous rendering and Close releases the device.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Close()
}

// speakerDriver holds the speaker package functions used by SpeakerOutput.
type speakerDriver struct {
	init    func(sampleRate beep.SampleRate, bufferSize int) error
	play    func(s ...beep.Streamer)
	clear   func()
	suspend func() error
	resume  func() error
}

var defaultSpeaker = speakerDriver{
	init:    speaker.Init,
	play:    speaker.Play,
	clear:   speaker.Clear,
	suspend: speaker.Suspend,
	resume:  speaker.Resume,
}

// SpeakerOutput is the system default output device.
//
// The speaker can only be initialized once per process (the oto context
// behind it cannot be closed), so the first Init opens it and later ones
// resume it. Close drops anything still queued and suspends the device.
type SpeakerOutput struct {
	mu         sync.Mutex
	driver     speakerDriver
	opened     bool
	sampleRate beep.SampleRate
}

// NewSpeakerOutput returns the default output device.
func NewSpeakerOutput() *SpeakerOutput {
	return newSpeakerOutput(defaultSpeaker)
}

func newSpeakerOutput(driver speakerDriver) *SpeakerOutput {
	return &SpeakerOutput{driver: driver}
}

func (o *SpeakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.opened {
		if err := o.driver.init(sampleRate, bufferSize); err != nil {
			return err
		}
		o.opened = true
		o.sampleRate = sampleRate
		return nil
	}

	if sampleRate != o.sampleRate {
		return fmt.Errorf("speaker is open at %d Hz, cannot switch to %d Hz", o.sampleRate, sampleRate)
	}
	return o.driver.resume()
}

func (o *SpeakerOutput) Play(s ...beep.Streamer) {
	o.driver.play(s...)
}

func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.opened {
		return
	}
	o.driver.clear()
	if err := o.driver.suspend(); err != nil {
		slog.Default().Warn("failed to suspend speaker", "error", err)
	}
}
