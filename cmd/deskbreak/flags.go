package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/deskbreak/internal/config"
)

// alarmFlags holds the command-line overrides for config.Config.
type alarmFlags struct {
	mp3FilePath   string
	sleepDuration config.Duration
	amplification float64
	fadeInTime    config.Duration
}

func newAlarmFlags() *alarmFlags {
	defaults := config.DefaultConfig()
	return &alarmFlags{
		mp3FilePath:   defaults.Mp3FilePath,
		sleepDuration: defaults.SleepDuration,
		amplification: defaults.Amplification,
		fadeInTime:    defaults.FadeInTime,
	}
}

func (f *alarmFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.mp3FilePath, "mp3-file-path", "m", f.mp3FilePath,
		"Sound file to play instead of the built-in alarm")
	fs.VarP(&f.sleepDuration, "sleep-duration", "s",
		"Quiet interval between alerts (lower -> you will move more)")
	fs.Float64VarP(&f.amplification, "amplification", "a", f.amplification,
		"Linear gain applied to the sound (1.0 = original loudness)")
	fs.VarP(&f.fadeInTime, "fade-in-time", "f",
		"How long the alert takes to fade in from silence")
}

// apply copies the flags that were set on the command line into cfg.
// Flags left at their defaults do not override values from a config file.
func (f *alarmFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("mp3-file-path") {
		cfg.Mp3FilePath = f.mp3FilePath
	}
	if fs.Changed("sleep-duration") {
		cfg.SleepDuration = f.sleepDuration
	}
	if fs.Changed("amplification") {
		cfg.Amplification = f.amplification
	}
	if fs.Changed("fade-in-time") {
		cfg.FadeInTime = f.fadeInTime
	}
}

// resolveConfig layers defaults, the optional config file and explicit flags,
// then validates the result.
func resolveConfig(fs *pflag.FlagSet, configPath string, flags *alarmFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags.apply(fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
