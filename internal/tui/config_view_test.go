package tui

import (
	"errors"
	"testing"

	"nathanbeddoewebdev/hexpair/internal/config"
	"nathanbeddoewebdev/hexpair/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestConfigView(cfg *config.Config, saveErr error) (configViewModel, *int) {
	saves := 0
	m := newConfigViewModel(cfg)
	m.save = func(*config.Config) error {
		saves++
		return saveErr
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(configViewModel), &saves
}

func runCmd(m configViewModel, cmd tea.Cmd) configViewModel {
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(configViewModel)
}

func TestConfigView_EditAndSave(t *testing.T) {
	cfg := &config.Config{}
	m, saves := newTestConfigView(cfg, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(configViewModel)
	if !m.editing {
		t.Fatal("expected edit mode")
	}

	m.editor.SetValue("hash")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(next.(configViewModel), cmd)

	if cfg.CopyFormat != config.CopyFormatHash {
		t.Errorf("CopyFormat = %q, want %q", cfg.CopyFormat, config.CopyFormatHash)
	}
	if *saves != 1 {
		t.Errorf("expected 1 save, got %d", *saves)
	}
	if m.editing || m.statusKind != components.StatusSuccess {
		t.Errorf("unexpected state after save: editing=%v status=%q", m.editing, m.status)
	}
}

func TestConfigView_RejectsInvalidValue(t *testing.T) {
	cfg := &config.Config{}
	m, saves := newTestConfigView(cfg, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(configViewModel)
	m.editor.SetValue("rgb")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(configViewModel)

	if cmd != nil {
		t.Error("invalid value should not trigger a save")
	}
	if *saves != 0 || cfg.CopyFormat != "" {
		t.Errorf("config changed: saves=%d format=%q", *saves, cfg.CopyFormat)
	}
	if !m.editing || m.statusKind != components.StatusError {
		t.Errorf("expected to stay in edit mode with an error, got editing=%v status=%q", m.editing, m.status)
	}
}

func TestConfigView_SaveError(t *testing.T) {
	m, _ := newTestConfigView(&config.Config{}, errors.New("read-only"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(configViewModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(configViewModel)
	m.editor.SetValue("Hello")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(next.(configViewModel), cmd)

	if m.statusKind != components.StatusError {
		t.Errorf("expected error status, got %q", m.status)
	}
}
