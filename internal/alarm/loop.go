// Package alarm runs the alert cycle: play the clip, wait out its duration,
// stay quiet for the sleep interval, repeat.
package alarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/deskbreak/internal/sound"
)

// Player plays a clip and holds the output device for the given duration.
type Player interface {
	PlayFor(ctx context.Context, clip *sound.Clip, hold time.Duration) error
}

// Cycle identifies one play-then-sleep iteration in the logs.
type Cycle struct {
	ID        ulid.ULID
	Number    int
	StartedAt time.Time
}

// Loop alternates between playing the alert and sleeping.
type Loop struct {
	logger   *slog.Logger
	player   Player
	clip     *sound.Clip
	interval time.Duration
	cycles   int
}

// New creates a loop that plays clip through player every interval.
func New(clip *sound.Clip, player Player, interval time.Duration, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		logger:   logger,
		player:   player,
		clip:     clip,
		interval: interval,
	}
}

// Run loops until ctx is cancelled or playback fails. Cancellation returns
// nil; any playback error is returned unchanged and ends the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("alarm started",
		"sound", l.clip.Name(),
		"format", l.clip.Format(),
		"size", humanize.Bytes(uint64(l.clip.Size())),
		"sound_duration", l.clip.Duration(),
		"sleep_duration", l.interval)

	for {
		if _, err := l.RunCycle(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				l.logger.Info("alarm stopped", "cycles", l.cycles)
				return nil
			}
			return err
		}
	}
}

// RunCycle plays the clip once, holding the device for the clip's probed
// duration, then sleeps for the interval.
func (l *Loop) RunCycle(ctx context.Context) (Cycle, error) {
	if err := ctx.Err(); err != nil {
		return Cycle{}, err
	}

	l.cycles++
	cycle := Cycle{
		ID:        ulid.Make(),
		Number:    l.cycles,
		StartedAt: time.Now(),
	}
	log := l.logger.With("cycle_id", cycle.ID.String(), "cycle", cycle.Number)

	log.Info("playing alert", "sound", l.clip.Name())
	if err := l.player.PlayFor(ctx, l.clip, l.clip.Duration()); err != nil {
		return cycle, fmt.Errorf("alert cycle %d: %w", cycle.Number, err)
	}
	if err := ctx.Err(); err != nil {
		return cycle, err
	}

	next := time.Now().Add(l.interval)
	log.Info("sleeping", "duration", l.interval, "next_alert", humanize.Time(next))
	if err := sleep(ctx, l.interval); err != nil {
		return cycle, err
	}

	log.Debug("alert cycle finished", "elapsed", time.Since(cycle.StartedAt))
	return cycle, nil
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
