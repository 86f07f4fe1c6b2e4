package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configOpts struct {
	write string
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Resolve defaults, the optional --config file and any alarm flags, then
print the result as TOML.

Examples:
  # Start a config file from the defaults
  deskbreak config --write ~/deskbreak.toml

  # Check what a set of flags resolves to
  deskbreak config --config ~/deskbreak.toml --sleep-duration 45min`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configOpts.write, "write", "w", "",
		"Write the configuration to this path instead of stdout")
	alarmOpts.bind(configCmd.Flags())
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), globalOpts.configPath, alarmOpts)
	if err != nil {
		return err
	}

	if configOpts.write != "" {
		if err := cfg.Save(configOpts.write); err != nil {
			return err
		}
		logger.Info("configuration written", "path", configOpts.write)
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
