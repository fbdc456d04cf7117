// Package styles provides the color palette and style definitions for the
// hexpair panel. Chrome colors live here; swatch colors come from the
// palette itself at render time.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent
	Blue     = lipgloss.Color("#5FAFFF")
	DarkBlue = lipgloss.Color("#1A2F40")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")

	// Swatch labels
	Ink   = lipgloss.Color("#000000")
	Paper = lipgloss.Color("#FFFFFF")
)

// Hex returns the lipgloss color for a six-digit hex code without '#'.
func Hex(code string) lipgloss.Color {
	return lipgloss.Color("#" + code)
}
