// Package main provides the CLI entrypoint for deskbreak.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskbreak/internal/alarm"
	"github.com/jmylchreest/deskbreak/internal/audio"
	"github.com/jmylchreest/deskbreak/internal/config"
	"github.com/jmylchreest/deskbreak/internal/sound"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	globalOpts struct {
		verbose    bool
		configPath string
	}
	alarmOpts = newAlarmFlags()
	logger    = slog.Default()

	// newOutput returns the device the alarm plays through.
	newOutput = func() audio.Output { return audio.NewSpeakerOutput() }
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deskbreak",
	Short: "Play a loud alarm at a fixed interval to get you away from your desk",
	Long: `deskbreak plays an alert sound, waits for it to finish, sleeps for the
configured interval and starts again, until it is interrupted.

Without --mp3-file-path the built-in alarm sound is used. MP3, WAV and
Ogg Vorbis files are accepted.

Durations are human readable: 30min, 45sec, 1h 30min, 1min30sec.

Examples:
  # Default: alarm every 30 minutes at 150% volume with a 2 second fade-in
  deskbreak

  # Your own sound every 45 minutes, no fade-in
  deskbreak --mp3-file-path ~/wake.mp3 --sleep-duration 45min --fade-in-time 0sec

  # Settings from a file, with one override
  deskbreak --config ~/deskbreak.toml --amplification 2`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runAlarm,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.configPath, "config", "c", "",
		"Path to a TOML config file (none is read by default)")

	// Alarm flags
	alarmOpts.bind(rootCmd.Flags())
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelInfo
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func runAlarm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), globalOpts.configPath, alarmOpts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return startAlarm(ctx, cfg, newOutput())
}

// startAlarm loads the sound and runs the alarm loop until ctx is cancelled.
// Startup failures are returned before the output device is touched.
func startAlarm(ctx context.Context, cfg *config.Config, out audio.Output) error {
	clip, err := loadClip(cfg.Mp3FilePath)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(out, audio.Options{
		Amplification: cfg.Amplification,
		FadeIn:        cfg.FadeInTime.Duration(),
	}, logger)

	return alarm.New(clip, player, cfg.SleepDuration.Duration(), logger).Run(ctx)
}

// loadClip reads the override file, or returns the embedded sound when path is empty.
// A leading ~ is expanded to the home directory.
func loadClip(path string) (*sound.Clip, error) {
	if path == "" {
		return sound.Default()
	}
	return sound.Load(config.ExpandPath(path))
}
