package components

import (
	"nathanbeddoewebdev/hexpair/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// SwatchWidth is the rendered width of a Swatch.
const SwatchWidth = 10

// Swatch renders a block filled with the hex color, labelled with its code
// in black or white, whichever reads better on that background.
func Swatch(code string, selected bool) string {
	label := code
	if selected {
		label = "▸" + code
	}
	return lipgloss.NewStyle().
		Width(SwatchWidth).
		Align(lipgloss.Center).
		Background(styles.Hex(code)).
		Foreground(LabelColor(code)).
		Bold(selected).
		Render(label)
}

// LabelColor returns black for light backgrounds and white for dark ones,
// judged by CIE L*. Unparseable codes get white.
func LabelColor(code string) lipgloss.Color {
	c, err := colorful.Hex("#" + code)
	if err != nil {
		return styles.Paper
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return styles.Ink
	}
	return styles.Paper
}
