// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llbbl/callfake/internal/selfcheck"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the behavioural scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		scenarios := selfcheck.Catalog()

		width := 0
		for _, s := range scenarios {
			width = max(width, len(s.Name))
		}

		for _, s := range scenarios {
			fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, s.Name, s.Description)
		}
	},
}
