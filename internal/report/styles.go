// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package report

import "github.com/charmbracelet/lipgloss"

// Status colors for scenario outcomes.
const (
	ColorPass = lipgloss.Color("#00FF00") // Green - outcome as expected
	ColorFail = lipgloss.Color("#FF0000") // Red - outcome differs
)

// UI colors for general text elements.
const (
	ColorPrimary   = lipgloss.Color("#7D56F4") // Purple accent
	ColorSecondary = lipgloss.Color("#FFFDF5") // Off-white text
	ColorMuted     = lipgloss.Color("#626262") // Muted text
	ColorBorder    = lipgloss.Color("#383838") // Border color
)

// Styles contains the lipgloss style definitions for text reports.
type Styles struct {
	Title       lipgloss.Style
	Pass        lipgloss.Style
	Fail        lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style
	Detail      lipgloss.Style
	Summary     lipgloss.Style
}

// DefaultStyles creates styles bound to r, so colour output follows the
// capabilities of the writer r was created for.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			BorderBottom(true),

		Pass: r.NewStyle().
			Foreground(ColorPass).
			Bold(true),

		Fail: r.NewStyle().
			Foreground(ColorFail).
			Bold(true),

		Name: r.NewStyle().
			Foreground(ColorSecondary),

		Description: r.NewStyle().
			Foreground(ColorMuted),

		Detail: r.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(6),

		Summary: r.NewStyle().
			Bold(true).
			MarginTop(1),
	}
}
