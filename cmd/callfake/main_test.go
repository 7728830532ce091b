// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llbbl/callfake/internal/cmd"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "scenarios failed", err: cmd.ErrScenariosFailed, want: 2},
		{name: "wrapped scenarios failed", err: fmt.Errorf("run: %w", cmd.ErrScenariosFailed), want: 2},
		{name: "other error", err: errors.New("loading config: bad"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
