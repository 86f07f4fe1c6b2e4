package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/deskbreak/internal/sound"
)

var probeOpts struct {
	output string
}

var probeCmd = &cobra.Command{
	Use:   "probe [file]",
	Short: "Show the format and duration of a sound file",
	Long: `Decode the headers of a sound file and report how long one alert lasts.

Without a file argument the built-in alarm sound is probed.

Examples:
  deskbreak probe
  deskbreak probe ~/wake.mp3 --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVarP(&probeOpts.output, "output", "o", "text",
		"Output format: text, json, yaml")
	rootCmd.AddCommand(probeCmd)
}

// ProbeResult describes a probed sound.
type ProbeResult struct {
	Name       string `json:"name" yaml:"name"`
	Format     string `json:"format" yaml:"format"`
	SizeBytes  int    `json:"size_bytes" yaml:"size_bytes"`
	Duration   string `json:"duration" yaml:"duration"`
	DurationMs int64  `json:"duration_ms" yaml:"duration_ms"`
}

func newProbeResult(clip *sound.Clip) ProbeResult {
	return ProbeResult{
		Name:       clip.Name(),
		Format:     clip.Format().String(),
		SizeBytes:  clip.Size(),
		Duration:   clip.Duration().String(),
		DurationMs: clip.Duration().Milliseconds(),
	}
}

func runProbe(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	clip, err := loadClip(path)
	if err != nil {
		return err
	}

	return writeProbe(cmd.OutOrStdout(), newProbeResult(clip), probeOpts.output)
}

func writeProbe(w io.Writer, result ProbeResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintf(w, "name:     %s\nformat:   %s\nsize:     %s\nduration: %s\n",
			result.Name, result.Format, humanize.Bytes(uint64(result.SizeBytes)), result.Duration)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
