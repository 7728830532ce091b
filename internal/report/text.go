// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteText writes a styled, human readable report.
func WriteText(w io.Writer, rep Report) error {
	s := DefaultStyles(lipgloss.NewRenderer(w))

	nameWidth := 0
	for _, r := range rep.Scenarios {
		nameWidth = max(nameWidth, len(r.Name))
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("callfake selfcheck"))
	b.WriteString("\n")

	for _, r := range rep.Scenarios {
		status := s.Pass.Render("PASS")
		if !r.Passed {
			status = s.Fail.Render("FAIL")
		}

		name := fmt.Sprintf("%-*s", nameWidth, r.Name)
		fmt.Fprintf(&b, "%s  %s  %s\n", status, s.Name.Render(name), s.Description.Render(r.Description))

		if r.Passed {
			continue
		}
		want := r.WantFailure
		if want == "" {
			want = "(no failure)"
		}
		b.WriteString(s.Detail.Render("want: "+want) + "\n")
		got := "(no failure)"
		if len(r.Failures) > 0 {
			got = strings.Join(r.Failures, " | ")
		}
		b.WriteString(s.Detail.Render("got:  "+got) + "\n")
		if r.Panic != "" {
			b.WriteString(s.Detail.Render("panic: "+r.Panic) + "\n")
		}
	}

	summary := fmt.Sprintf("%d scenarios, %d passed, %d failed", rep.Total, rep.Passed, rep.Failed)
	if rep.Failed > 0 {
		summary = s.Summary.Foreground(ColorFail).Render(summary)
	} else {
		summary = s.Summary.Foreground(ColorPass).Render(summary)
	}
	b.WriteString(summary)
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
