// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package report renders selfcheck results for the terminal or for tooling.
package report

import (
	"fmt"
	"io"

	"github.com/llbbl/callfake/internal/selfcheck"
)

// Report is the serialisable view of a selfcheck run.
type Report struct {
	Total     int              `json:"total" yaml:"total"`
	Passed    int              `json:"passed" yaml:"passed"`
	Failed    int              `json:"failed" yaml:"failed"`
	Scenarios []ReportedResult `json:"scenarios" yaml:"scenarios"`
}

// ReportedResult represents a single scenario in the report.
type ReportedResult struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Passed      bool     `json:"passed" yaml:"passed"`
	WantFailure string   `json:"want_failure,omitempty" yaml:"want_failure,omitempty"`
	Failures    []string `json:"failures,omitempty" yaml:"failures,omitempty"`
	Panic       string   `json:"panic,omitempty" yaml:"panic,omitempty"`
}

// Build converts results into a Report with totals filled in.
func Build(results []selfcheck.Result) Report {
	rep := Report{
		Total:     len(results),
		Scenarios: make([]ReportedResult, 0, len(results)),
	}

	for _, r := range results {
		if r.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}

		rep.Scenarios = append(rep.Scenarios, ReportedResult{
			Name:        r.Name,
			Description: r.Description,
			Passed:      r.Passed,
			WantFailure: r.WantFailure,
			Failures:    r.Failures,
			Panic:       r.Panic,
		})
	}

	return rep
}

// Render writes results to w in format: "text", "json" or "yaml".
func Render(w io.Writer, results []selfcheck.Result, format string) error {
	rep := Build(results)

	switch format {
	case "text", "":
		return WriteText(w, rep)
	case "json":
		return WriteJSON(w, rep)
	case "yaml":
		return WriteYAML(w, rep)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
