// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package logging configures slog for callfake and its selfcheck CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is treated as info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w.
// format: "json" selects the JSON handler, anything else the text handler.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetupLogger installs a stderr logger with the given level and format as
// the slog default.
func SetupLogger(level, format string) {
	slog.SetDefault(NewLogger(os.Stderr, level, format))
}

// WithComponent returns a logger with the component field set.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
