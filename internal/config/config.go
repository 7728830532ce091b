// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides environment-based configuration for the callfake CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	LogLevel     string // debug, info, warn, error (default: info)
	LogFormat    string // text, json (default: text)
	ReportFormat string // text, json, yaml (default: text)
	FailFast     bool   // stop a run at the first unexpected outcome (default: false)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// ValidReportFormats contains the allowed report format values.
var ValidReportFormats = []string{"text", "json", "yaml"}

// Load reads configuration from environment variables, with .env file as optional override.
// The .env file is loaded if present but errors are ignored if it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom()
}

// LoadFrom is Load with explicit dotenv files. With no files it looks for
// .env in the working directory. Variables already set in the environment
// win over dotenv values. A missing file is not an error.
func LoadFrom(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading dotenv: %w", err)
	}

	cfg := &Config{
		LogLevel:     getEnv("CALLFAKE_LOG_LEVEL", "info"),
		LogFormat:    getEnv("CALLFAKE_LOG_FORMAT", "text"),
		ReportFormat: getEnv("CALLFAKE_REPORT_FORMAT", "text"),
		FailFast:     getBoolEnv("CALLFAKE_FAIL_FAST", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every enumerated setting holds an allowed value.
// Call it again after overriding fields from flags.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid CALLFAKE_LOG_LEVEL %q: must be one of %v", c.LogLevel, validLogLevels)
	}

	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid CALLFAKE_LOG_FORMAT %q: must be one of %v", c.LogFormat, validLogFormats)
	}

	if !slices.Contains(ValidReportFormats, c.ReportFormat) {
		return fmt.Errorf("invalid CALLFAKE_REPORT_FORMAT %q: must be one of %v", c.ReportFormat, ValidReportFormats)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves a boolean environment variable or returns a default value.
// If the value cannot be parsed as a bool, the default is returned.
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
