// Package config handles configuration defaults, validation and file loading.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultSleepDuration = 30 * time.Minute
	DefaultAmplification = 1.5
	DefaultFadeInTime    = 2 * time.Second
)

// ErrInvalidAmplification is returned by Validate for a negative or non-finite gain.
var ErrInvalidAmplification = errors.New("invalid amplification")

// Config represents the deskbreak configuration.
type Config struct {
	Mp3FilePath   string   `toml:"mp3_file_path"`  // Empty = embedded default sound
	SleepDuration Duration `toml:"sleep_duration"` // Quiet interval between alerts
	Amplification float64  `toml:"amplification"`  // Linear gain, 1.0 = original loudness
	FadeInTime    Duration `toml:"fade_in_time"`   // 0 = no fade-in
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Mp3FilePath:   "",
		SleepDuration: Duration(DefaultSleepDuration),
		Amplification: DefaultAmplification,
		FadeInTime:    Duration(DefaultFadeInTime),
	}
}

// LoadConfig loads configuration from the specified path on top of the defaults.
// An empty path returns the defaults; there is no implicit config location.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be expressed by the field types.
func (c *Config) Validate() error {
	if math.IsNaN(c.Amplification) || math.IsInf(c.Amplification, 0) || c.Amplification < 0 {
		return fmt.Errorf("%w: %v (must be a finite value >= 0)", ErrInvalidAmplification, c.Amplification)
	}
	if c.SleepDuration < 0 {
		return fmt.Errorf("%w: sleep duration %s is negative", ErrInvalidDuration, c.SleepDuration)
	}
	if c.FadeInTime < 0 {
		return fmt.Errorf("%w: fade-in time %s is negative", ErrInvalidDuration, c.FadeInTime)
	}
	return nil
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.New("no config path given")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
