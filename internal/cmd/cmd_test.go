// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbbl/callfake/internal/selfcheck"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	for _, key := range []string{"CALLFAKE_LOG_LEVEL", "CALLFAKE_LOG_FORMAT", "CALLFAKE_REPORT_FORMAT", "CALLFAKE_FAIL_FAST"} {
		if _, ok := os.LookupEnv(key); !ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	// Flag values live in package variables and survive between runs
	logLevel, logFormat = "", ""
	scenarioNames, reportFormat, failFast = nil, "text", false
	resetChanged := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(resetChanged)
	runCmd.Flags().VisitAll(resetChanged)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionVariable(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestGetConfig_NilBeforeExecute(t *testing.T) {
	cfg = nil

	if GetConfig() != nil {
		t.Error("GetConfig() should return nil before Execute()")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Equal(t, "callfake version dev\n", out)
	require.NotNil(t, GetConfig())
	assert.Equal(t, "error", GetConfig().LogLevel)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, s := range selfcheck.Catalog() {
		assert.Contains(t, out, s.Name)
	}
}

func TestRunCommand_AllPass(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)

	assert.Contains(t, out, "0 failed")
}

func TestRunCommand_JSON(t *testing.T) {
	out, err := execute(t, "run", "--scenario", "never-invoked", "--scenario", "return-resolver", "--format", "json")
	require.NoError(t, err)

	var rep struct {
		Total  int `json:"total"`
		Passed int `json:"passed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 2, rep.Passed)
}

func TestRunCommand_ReportFormatFromEnv(t *testing.T) {
	t.Setenv("CALLFAKE_REPORT_FORMAT", "yaml")

	out, err := execute(t, "run", "-s", "func-reference")
	require.NoError(t, err)

	assert.Contains(t, out, "total: 1")
	assert.Equal(t, "yaml", GetConfig().ReportFormat)
}

func TestRunCommand_UnknownScenario(t *testing.T) {
	_, err := execute(t, "run", "--scenario", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestRunCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestRoot_InvalidEnvConfig(t *testing.T) {
	t.Setenv("CALLFAKE_LOG_FORMAT", "xml")

	_, err := execute(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestRoot_InvalidLogFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "log level", args: []string{"--log-level", "bogus", "version"}, want: "invalid CALLFAKE_LOG_LEVEL"},
		{name: "log format", args: []string{"--log-format", "xml", "version"}, want: "invalid CALLFAKE_LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg = nil

			_, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid flag")
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, GetConfig())
		})
	}
}
