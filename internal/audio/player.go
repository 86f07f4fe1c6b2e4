package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/jmylchreest/deskbreak/internal/sound"
)

// bufferDuration is the speaker buffer length.
const bufferDuration = 100 * time.Millisecond

// Options controls how a clip is rendered.
type Options struct {
	// Amplification is a linear gain multiplier (1.0 = original loudness).
	Amplification float64
	// FadeIn is the length of the linear ramp from silence at playback start.
	FadeIn time.Duration
}

// Player handles alert playback.
type Player struct {
	logger *slog.Logger
	output Output
	opts   Options
}

// NewPlayer creates a new audio player writing to output.
func NewPlayer(output Output, opts Options, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	if output == nil {
		output = NewSpeakerOutput()
	}

	return &Player{
		logger: logger,
		output: output,
		opts:   opts,
	}
}

// PlayFor decodes a fresh stream from clip, acquires the output device,
// starts playback and holds the device for the given duration before
// releasing it. Playback completion is not awaited; hold is the estimate.
// A cancelled ctx cuts the hold short and still releases the device.
func (p *Player) PlayFor(ctx context.Context, clip *sound.Clip, hold time.Duration) error {
	streamer, format, err := clip.Decode()
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	if err := p.output.Init(format.SampleRate, format.SampleRate.N(bufferDuration)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	defer p.output.Close()
	p.logger.Debug("speaker initialized", "sample_rate", format.SampleRate)

	p.output.Play(p.chain(streamer, format))
	p.logger.Debug("playback started", "sound", clip.Name(), "hold", hold,
		"amplification", p.opts.Amplification, "fade_in", p.opts.FadeIn)

	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	p.logger.Debug("speaker released")
	return nil
}

// chain applies gain and then the fade-in. The decoders already yield float
// samples at the clip's own rate, which is the rate the speaker is opened at.
func (p *Player) chain(s beep.Streamer, format beep.Format) beep.Streamer {
	s = amplify(s, p.opts.Amplification)
	return newFadeIn(s, format.SampleRate.N(p.opts.FadeIn))
}
