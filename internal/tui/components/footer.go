package components

import (
	"strings"

	"nathanbeddoewebdev/hexpair/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the key binding help bar at the bottom of the screen.
// Disabled bindings are skipped.
func Footer(width int, bindings []key.Binding) string {
	if width < 10 {
		return ""
	}

	sep := styles.KeySepStyle.Render("  ")
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		parts = append(parts, styles.FormatKeyBinding(help.Key, help.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	content := strings.Join(parts, sep)

	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(content)

	return bar
}
