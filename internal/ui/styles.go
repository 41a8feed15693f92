package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft blue #7AA2F7): file paths, route paths, highlights
// - Muted (gray): secondary info, hints
// - No colored success/error - unicode symbols only

const defaultAccent = "#7AA2F7"

var (
	// Accent style for file paths, route paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme overrides the accent color. Accepts ANSI color codes
// ("0" to "255") or hex colors ("#RRGGBB"); empty keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}
