// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package main

import (
	"errors"
	"os"

	"github.com/llbbl/callfake/internal/cmd"
)

// Exit codes: scenarios that ran but misbehaved are told apart from
// usage and configuration errors.
const (
	exitOK              = 0
	exitError           = 1
	exitScenariosFailed = 2
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cmd.ErrScenariosFailed):
		return exitScenariosFailed
	default:
		return exitError
	}
}

func main() {
	os.Exit(exitCode(cmd.Execute()))
}
