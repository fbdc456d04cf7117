// Package clipboard copies color codes to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"nathanbeddoewebdev/hexpair/internal/palette"
)

// ErrUnsupported indicates no clipboard utility is available on this host
// (for example a headless Linux box without xclip, xsel or wl-copy).
var ErrUnsupported = errors.New("clipboard unavailable")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the Writer backed by the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copier formats a color and writes it to a clipboard.
type Copier struct {
	W      Writer
	Format func(hex string) string
}

// Copy writes c to the clipboard and returns the exact text written.
func (c Copier) Copy(color palette.Color) (string, error) {
	if err := color.Validate(); err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	text := string(color)
	if c.Format != nil {
		text = c.Format(text)
	}
	w := c.W
	if w == nil {
		w = System{}
	}
	if err := w.WriteAll(text); err != nil {
		return "", fmt.Errorf("clipboard: failed to copy %s: %w", text, err)
	}
	return text, nil
}

// Observer returns a palette.Observer that copies every selected color and
// passes the copied text to confirm, e.g. to show "Copied! #A1B2C3".
func (c Copier) Observer(confirm func(text string)) palette.Observer {
	return palette.ObserverFuncs{
		OnColorSelected: func(color palette.Color) error {
			text, err := c.Copy(color)
			if err != nil {
				return err
			}
			if confirm != nil {
				confirm(text)
			}
			return nil
		},
	}
}

// Confirmation is the message shown after text was copied. The color is
// always shown with a leading "#", whatever the copy format.
func Confirmation(text string) string {
	return "Copied! #" + strings.TrimPrefix(text, "#")
}

// Memory is an in-process Writer. The zero value is ready to use.
type Memory struct {
	Text string
	Err  error
}

func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
