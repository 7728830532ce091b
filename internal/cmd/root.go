// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/llbbl/callfake/internal/config"
	"github.com/llbbl/callfake/internal/logging"
)

// Version is set at build time with -ldflags
var Version = "dev"

// Flag variables
var (
	logLevel  string
	logFormat string
)

// cfg is loaded by the root command before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "callfake",
	Short: "Fake callables for Go tests",
	Long: `callfake records calls to a fake function and asserts on them.
The CLI runs the built-in behavioural scenarios against the library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Flags win over the environment
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if logFormat != "" {
			loaded.LogFormat = logFormat
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid flag: %w", err)
		}

		logging.SetupLogger(loaded.LogLevel, loaded.LogFormat)
		slog.Debug("config loaded", "component", "cmd", "log_level", loaded.LogLevel, "report_format", loaded.ReportFormat)

		cfg = loaded
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "callfake version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides CALLFAKE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json (overrides CALLFAKE_LOG_FORMAT)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the configuration loaded by the last command run, or nil.
func GetConfig() *config.Config {
	return cfg
}
