package tui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/hexpair/internal/auditlog"
	"nathanbeddoewebdev/hexpair/internal/clipboard"
	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/palettestore"
	"nathanbeddoewebdev/hexpair/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// memRepo is an in-memory palettestore.Repository.
type memRepo struct {
	state   palettestore.State
	loadErr error
	saves   int
}

func (r *memRepo) Load() (*palettestore.State, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	s := palettestore.State{Colors: r.state.Colors.Clone(), Input: r.state.Input}
	return &s, nil
}

func (r *memRepo) SaveColors(list palette.List) error {
	r.saves++
	r.state.Colors = list.Clone()
	return nil
}

func (r *memRepo) SaveInput(input palette.Color) error {
	r.state.Input = input
	return nil
}

func (r *memRepo) Close() error { return nil }

type panelFixture struct {
	repo    *memRepo
	clip    *clipboard.Memory
	audited []auditlog.AuditEntry
}

func newTestPanel(t *testing.T, list palette.List) (panelModel, *panelFixture) {
	t.Helper()

	fx := &panelFixture{
		repo: &memRepo{state: palettestore.State{Colors: list, Input: palette.DefaultInput}},
		clip: &clipboard.Memory{},
	}

	mgr := palette.NewManager(list, palette.DefaultInput, palette.NewGenerator(rand.NewPCG(1, 2)))
	mgr.Subscribe(palettestore.Observer(fx.repo))

	m := newPanelModel(PanelDeps{
		Manager:    mgr,
		Store:      fx.repo,
		Copier:     clipboard.Copier{W: fx.clip, Format: func(h string) string { return "#" + strings.ToUpper(h) }},
		SampleText: "Sample",
		Audit: func(e *auditlog.AuditEntry, _ error, _ time.Time) {
			fx.audited = append(fx.audited, *e)
		},
	})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(panelModel), fx
}

func press(t *testing.T, m panelModel, keys ...string) panelModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(panelModel)
	}
	return m
}

func twoPairs() palette.List {
	return palette.List{{Value: "112233"}, {Value: "EEDDCC"}, {Value: "000000"}, {Value: "FFFFFF"}}
}

func TestPanel_GenerateAppendsAndPersists(t *testing.T) {
	m, fx := newTestPanel(t, nil)

	m = press(t, m, "g")

	if got := m.mgr.List().PairCount(); got != 1 {
		t.Fatalf("expected 1 pair, got %d", got)
	}
	if fx.repo.state.Colors.Len() != 2 {
		t.Errorf("expected store to hold 2 entries, got %d", fx.repo.state.Colors.Len())
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if len(fx.audited) != 1 || fx.audited[0].Command != "panel generate" {
		t.Errorf("unexpected audit entries: %+v", fx.audited)
	}
}

func TestPanel_GenerateWhenFull(t *testing.T) {
	var full palette.List
	gen := palette.NewGenerator(rand.NewPCG(5, 6))
	for range palette.MaxPairs {
		full = palette.AppendPair(full, gen)
	}
	m, fx := newTestPanel(t, full)

	m = press(t, m, "g")

	if got := m.mgr.List().Len(); got != 2*palette.MaxPairs {
		t.Errorf("expected %d entries, got %d", 2*palette.MaxPairs, got)
	}
	if fx.repo.saves != 0 {
		t.Errorf("full palette should not be saved, got %d saves", fx.repo.saves)
	}
	if m.statusKind != components.StatusWarning || !strings.Contains(m.status, "full") {
		t.Errorf("unexpected status %q (%v)", m.status, m.statusKind)
	}
}

func TestPanel_ClearRequiresConfirmation(t *testing.T) {
	m, fx := newTestPanel(t, twoPairs())

	m = press(t, m, "c", "n")
	if m.mgr.List().Len() != 4 {
		t.Fatalf("clear was applied without confirmation")
	}
	if m.clearing {
		t.Fatal("expected confirmation to be dismissed")
	}

	m = press(t, m, "c", "y")
	if m.mgr.List().Len() != 0 {
		t.Errorf("expected empty list, got %d", m.mgr.List().Len())
	}
	if fx.repo.state.Colors.Len() != 0 {
		t.Errorf("expected store to be cleared")
	}
}

func TestPanel_ClearEmptyDoesNotPrompt(t *testing.T) {
	m, _ := newTestPanel(t, nil)

	m = press(t, m, "c")
	if m.clearing {
		t.Error("should not prompt when there is nothing to clear")
	}
}

func TestPanel_CopyBackgroundAndForeground(t *testing.T) {
	m, fx := newTestPanel(t, twoPairs())

	m = press(t, m, "y")
	if fx.clip.Text != "#112233" {
		t.Errorf("clipboard = %q, want %q", fx.clip.Text, "#112233")
	}
	if m.status != "Copied! #112233" {
		t.Errorf("status = %q", m.status)
	}

	m = press(t, m, "j", "Y")
	if fx.clip.Text != "#FFFFFF" {
		t.Errorf("clipboard = %q, want %q", fx.clip.Text, "#FFFFFF")
	}
}

func TestPanel_CopyError(t *testing.T) {
	m, fx := newTestPanel(t, twoPairs())
	fx.clip.Err = clipboard.ErrUnsupported

	m = press(t, m, "enter")
	if m.statusKind != components.StatusError {
		t.Errorf("expected error status, got %q", m.status)
	}
}

func TestPanel_CursorBounds(t *testing.T) {
	m, _ := newTestPanel(t, twoPairs())

	m = press(t, m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor moved above first pair: %d", m.cursor)
	}
	m = press(t, m, "j", "j", "j")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestPanel_SwapIsViewOnly(t *testing.T) {
	m, _ := newTestPanel(t, twoPairs())
	before := m.mgr.List()

	m = press(t, m, "s")
	if !m.swapped[0] {
		t.Fatal("expected pair 0 to be swapped")
	}
	if got := m.mgr.List(); got[0] != before[0] || got[1] != before[1] {
		t.Error("swap must not change the stored order")
	}

	m = press(t, m, "s")
	if m.swapped[0] {
		t.Error("second swap should restore the pair")
	}
}

func TestPanel_EditInput(t *testing.T) {
	m, fx := newTestPanel(t, nil)

	m = press(t, m, "e")
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m.editor.SetValue("#a1b2c3")
	m = press(t, m, "enter")

	if m.editing {
		t.Error("expected edit mode to end")
	}
	if m.mgr.Input() != "a1b2c3" {
		t.Errorf("Input() = %q, want %q", m.mgr.Input(), "a1b2c3")
	}
	if fx.repo.state.Input != "a1b2c3" {
		t.Errorf("stored input = %q", fx.repo.state.Input)
	}
}

func TestPanel_EditEscCancels(t *testing.T) {
	m, _ := newTestPanel(t, nil)

	m = press(t, m, "e")
	m.editor.SetValue("ffffff")
	m = press(t, m, "esc")

	if m.editing {
		t.Error("esc should leave edit mode")
	}
	if m.mgr.Input() != palette.DefaultInput {
		t.Errorf("Input() changed to %q", m.mgr.Input())
	}
}

func TestPanel_StoreChangedReloads(t *testing.T) {
	m, fx := newTestPanel(t, twoPairs())
	m = press(t, m, "j")

	fx.repo.state.Colors = palette.List{{Value: "abcdef"}, {Value: "543210"}}
	fx.repo.state.Input = "123456"

	next, _ := m.Update(storeChangedMsg{})
	m = next.(panelModel)

	if m.mgr.List().PairCount() != 1 {
		t.Fatalf("expected reloaded list with 1 pair, got %d", m.mgr.List().PairCount())
	}
	if m.cursor != 0 {
		t.Errorf("cursor should be clamped, got %d", m.cursor)
	}
	if m.mgr.Input() != "123456" {
		t.Errorf("Input() = %q, want %q", m.mgr.Input(), "123456")
	}
}

func TestPanel_StoreChangedLoadError(t *testing.T) {
	m, fx := newTestPanel(t, twoPairs())
	fx.repo.loadErr = errors.New("locked")

	next, _ := m.Update(storeChangedMsg{})
	m = next.(panelModel)

	if m.statusKind != components.StatusError {
		t.Errorf("expected error status, got %q", m.status)
	}
	if m.mgr.List().Len() != 4 {
		t.Error("failed reload should keep current state")
	}
}

func TestPanel_ViewEmptyState(t *testing.T) {
	m, _ := newTestPanel(t, nil)

	view := m.View()
	if !strings.Contains(view, "No colors yet") {
		t.Errorf("expected empty-state hint in view")
	}
	if !strings.Contains(view, "0/10 pairs") {
		t.Errorf("expected pair counter in header")
	}
}

func TestPanel_ViewShowsPairs(t *testing.T) {
	m, _ := newTestPanel(t, twoPairs())

	view := m.View()
	for _, want := range []string{"112233", "EEDDCC", "Sample", "2/10 pairs"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestPanel_QuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestPanel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
