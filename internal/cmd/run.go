// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/llbbl/callfake/internal/logging"
	"github.com/llbbl/callfake/internal/report"
	"github.com/llbbl/callfake/internal/selfcheck"
)

// ErrScenariosFailed is returned by run when a scenario did not behave as expected.
var ErrScenariosFailed = errors.New("selfcheck scenarios failed")

var (
	scenarioNames []string
	reportFormat  string
	failFast      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the behavioural scenarios",
	Long: `Run the built-in scenarios against callfake and report which ones
behaved as expected. Use --scenario to pick individual scenarios.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.ReportFormat
		if cmd.Flags().Changed("format") {
			format = reportFormat
		}
		stopEarly := cfg.FailFast
		if cmd.Flags().Changed("fail-fast") {
			stopEarly = failFast
		}

		results, err := selfcheck.Run(selfcheck.Catalog(), selfcheck.Options{
			Names:    scenarioNames,
			FailFast: stopEarly,
			Logger:   logging.WithComponent("selfcheck"),
		})
		if err != nil {
			slog.Error("failed to select scenarios", "component", "cmd", "error", err)
			return fmt.Errorf("selecting scenarios: %w", err)
		}

		if err := report.Render(cmd.OutOrStdout(), results, format); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}

		for _, r := range results {
			if !r.Passed {
				return ErrScenariosFailed
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVarP(&scenarioNames, "scenario", "s", nil, "Scenario to run (repeatable, default all)")
	runCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Report format: text, json, yaml (overrides CALLFAKE_REPORT_FORMAT)")
	runCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first scenario that does not pass (overrides CALLFAKE_FAIL_FAST)")
}
