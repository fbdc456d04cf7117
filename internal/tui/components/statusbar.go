package components

import (
	"nathanbeddoewebdev/hexpair/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the status bar color.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// StatusBar renders a status message line between the content and footer.
func StatusBar(width int, message string, kind StatusKind) string {
	if message == "" {
		return ""
	}

	style := styles.MutedText
	switch kind {
	case StatusSuccess:
		style = styles.SuccessText
	case StatusWarning:
		style = styles.WarningText
	case StatusError:
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
