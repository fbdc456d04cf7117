package tui

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/hexpair/internal/palette"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

func accessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// ConfirmClear asks before discarding all pairs.
func ConfirmClear(pairs int) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title(fmt.Sprintf("Clear all %d color pair(s)?", pairs)).
		Affirmative("Yes, clear").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessibleMode(), huh.NewGroup(field)); err != nil {
		return false, err
	}
	return confirm, nil
}

// PromptHexInput asks for a color code. Any text is accepted; the caller
// normalizes it.
func PromptHexInput(current palette.Color) (string, error) {
	raw := string(current)
	field := huh.NewInput().
		Title("Color code").
		Description("Six hex digits. Other characters are dropped, short codes are zero-padded.").
		Placeholder(string(palette.DefaultInput)).
		CharLimit(palette.ColorLen + 1).
		Value(&raw)

	if err := runForm(accessibleMode(), huh.NewGroup(field)); err != nil {
		return "", err
	}
	return raw, nil
}
