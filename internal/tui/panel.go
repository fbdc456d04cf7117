package tui

import (
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/hexpair/internal/auditlog"
	"nathanbeddoewebdev/hexpair/internal/clipboard"
	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/palettestore"
	"nathanbeddoewebdev/hexpair/internal/tui/components"
	"nathanbeddoewebdev/hexpair/internal/tui/styles"
	"nathanbeddoewebdev/hexpair/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Panel messages ---

type storeChangedMsg struct{}

type watchErrorMsg struct {
	err error
}

// --- Key bindings ---

type panelKeyMap struct {
	Generate key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	CopyBG   key.Binding
	CopyFG   key.Binding
	Swap     key.Binding
	Edit     key.Binding
	Quit     key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Submit  key.Binding
}

func defaultPanelKeys() panelKeyMap {
	return panelKeyMap{
		Generate: key.NewBinding(key.WithKeys("g", "a"), key.WithHelp("g", "generate")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "move")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		CopyBG:   key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("y", "copy bg")),
		CopyFG:   key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy fg")),
		Swap:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap")),
		Edit:     key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e", "edit input")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "cancel")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	}
}

// --- Panel model ---

// PanelDeps are the collaborators the panel needs. Audit may be nil.
type PanelDeps struct {
	Manager    *palette.Manager
	Store      palettestore.Repository
	Copier     clipboard.Copier
	SampleText string
	Audit      func(entry *auditlog.AuditEntry, err error, start time.Time)
	Changes    <-chan struct{}
	WatchErrs  <-chan error
}

// copySink receives the text written by the clipboard observer. It is a
// pointer so the value-typed model can read what the observer saw.
type copySink struct {
	text string
}

type panelModel struct {
	mgr        *palette.Manager
	store      palettestore.Repository
	sampleText string
	audit      func(entry *auditlog.AuditEntry, err error, start time.Time)
	changes    <-chan struct{}
	watchErrs  <-chan error
	copied     *copySink
	keys       panelKeyMap

	cursor   int
	swapped  map[int]bool
	editing  bool
	editor   textinput.Model
	clearing bool

	width  int
	height int

	status     string
	statusKind components.StatusKind
}

func newPanelModel(deps PanelDeps) panelModel {
	sink := &copySink{}
	deps.Manager.Subscribe(deps.Copier.Observer(func(text string) { sink.text = text }))

	audit := deps.Audit
	if audit == nil {
		audit = func(*auditlog.AuditEntry, error, time.Time) {}
	}

	return panelModel{
		mgr:        deps.Manager,
		store:      deps.Store,
		sampleText: deps.SampleText,
		audit:      audit,
		changes:    deps.Changes,
		watchErrs:  deps.WatchErrs,
		copied:     sink,
		keys:       defaultPanelKeys(),
		swapped:    make(map[int]bool),
	}
}

// RunPanel starts the interactive palette panel. When dbPath is non-empty the
// panel reloads whenever another process writes that database.
func RunPanel(deps PanelDeps, dbPath string) error {
	if dbPath != "" && deps.Changes == nil {
		w, err := watch.New(dbPath)
		if err == nil {
			defer w.Close()
			deps.Changes = w.C
			deps.WatchErrs = w.Errors
		}
	}

	p := tea.NewProgram(newPanelModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), waitForWatchError(m.watchErrs))
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func waitForWatchError(ch <-chan error) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return watchErrorMsg{err: err}
	}
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case storeChangedMsg:
		m.reload()
		return m, waitForChange(m.changes)

	case watchErrorMsg:
		m.setStatus("Watch error: "+msg.err.Error(), components.StatusError)
		return m, waitForWatchError(m.watchErrs)
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *panelModel) reload() {
	if m.store == nil {
		return
	}
	state, err := m.store.Load()
	if err != nil {
		m.setStatus("Reload failed: "+err.Error(), components.StatusError)
		return
	}
	m.mgr.Replace(state.Colors, state.Input)
	m.clampCursor()
}

func (m panelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.clearing {
		return m.handleClearKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.mgr.List().PairCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Generate):
		m.generate()

	case key.Matches(msg, m.keys.Clear):
		if m.mgr.List().Len() == 0 {
			m.setStatus("Nothing to clear", components.StatusInfo)
			break
		}
		m.clearing = true
		m.setStatus("Clear all colors? (y/n)", components.StatusWarning)

	case key.Matches(msg, m.keys.CopyBG):
		m.copyCurrent(false)

	case key.Matches(msg, m.keys.CopyFG):
		m.copyCurrent(true)

	case key.Matches(msg, m.keys.Swap):
		if m.mgr.List().PairCount() > 0 {
			m.swapped[m.cursor] = !m.swapped[m.cursor]
		}

	case key.Matches(msg, m.keys.Edit):
		ti := textinput.New()
		ti.SetValue(string(m.mgr.Input()))
		ti.CharLimit = palette.ColorLen + 1
		ti.Width = palette.ColorLen + 2
		ti.Placeholder = string(palette.DefaultInput)
		ti.Focus()
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m panelModel) handleClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.clearing = false
		start := time.Now()
		_, err := m.mgr.Dispatch(palette.ClearAll())
		m.audit(&auditlog.AuditEntry{Command: "panel clear"}, err, start)
		m.swapped = make(map[int]bool)
		m.cursor = 0
		if err != nil {
			m.setStatus("Clear failed: "+err.Error(), components.StatusError)
		} else {
			m.setStatus("Cleared", components.StatusInfo)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.clearing = false
		m.status = ""
	}
	return m, nil
}

func (m panelModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.editing = false
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.editing = false
		start := time.Now()
		_, err := m.mgr.Dispatch(palette.Submit(m.editor.Value()))
		input := m.mgr.Input()
		m.audit(&auditlog.AuditEntry{Command: "panel set", Color: string(input)}, err, start)
		if err != nil {
			m.setStatus("Save failed: "+err.Error(), components.StatusError)
		} else {
			m.setStatus("Input set to "+string(input), components.StatusInfo)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *panelModel) generate() {
	before := m.mgr.List()
	if before.Full() {
		m.setStatus(fmt.Sprintf("Palette is full (%d pairs)", palette.MaxPairs), components.StatusWarning)
		return
	}

	start := time.Now()
	after, err := m.mgr.Dispatch(palette.Generate())
	entry := &auditlog.AuditEntry{Command: "panel generate", PairCount: after.PairCount()}
	if p, ok := after.Pair(after.PairCount() - 1); ok {
		entry.Color = string(p.Background)
	}
	m.audit(entry, err, start)

	m.cursor = after.PairCount() - 1
	if err != nil {
		m.setStatus("Save failed: "+err.Error(), components.StatusError)
		return
	}
	m.status = ""
}

func (m *panelModel) copyCurrent(foreground bool) {
	pair, ok := m.mgr.List().Pair(m.cursor)
	if !ok {
		return
	}
	color := pair.Background
	if foreground {
		color = pair.Foreground
	}

	start := time.Now()
	m.copied.text = ""
	_, err := m.mgr.Dispatch(palette.Select(color))
	m.audit(&auditlog.AuditEntry{Command: "panel copy", Color: string(color)}, err, start)
	if err != nil {
		m.setStatus("Copy failed: "+err.Error(), components.StatusError)
		return
	}
	m.setStatus(clipboard.Confirmation(m.copied.text), components.StatusSuccess)
}

func (m *panelModel) setStatus(msg string, kind components.StatusKind) {
	m.status = msg
	m.statusKind = kind
}

func (m *panelModel) clampCursor() {
	n := m.mgr.List().PairCount()
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// --- View ---

func (m panelModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	list := m.mgr.List()
	header := components.Header(m.width, "panel",
		fmt.Sprintf("%d/%d pairs", list.PairCount(), palette.MaxPairs))
	footer := components.Footer(m.width, m.footerBindings())
	statusBar := components.StatusBar(m.width, m.status, m.statusKind)

	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	sections := []string{header, m.renderContent(list, contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m panelModel) footerBindings() []key.Binding {
	switch {
	case m.editing:
		return []key.Binding{m.keys.Submit, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))}
	case m.clearing:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	default:
		return []key.Binding{
			m.keys.Generate, m.keys.Up, m.keys.CopyBG, m.keys.CopyFG,
			m.keys.Swap, m.keys.Edit, m.keys.Clear, m.keys.Quit,
		}
	}
}

func (m panelModel) renderContent(list palette.List, height int) string {
	rows := []string{m.renderInput(), ""}

	pairs := list.Pairs()
	if len(pairs) == 0 {
		rows = append(rows, styles.MutedText.Render("No colors yet. Press g to generate a pair."))
	}
	for i, p := range pairs {
		rows = append(rows, m.renderPair(i, p))
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Left, lipgloss.Top, content)
}

func (m panelModel) renderInput() string {
	label := styles.Label.Render("Input ")
	if m.editing {
		return label + styles.CardActive.Render(m.editor.View())
	}
	input := m.mgr.Input()
	complement, err := palette.Complement(input)
	if err != nil {
		return label + styles.ErrorText.Render(err.Error())
	}
	return label + styles.Sample(string(input), string(complement)).Render(string(input))
}

func (m panelModel) renderPair(i int, p palette.Pair) string {
	selected := i == m.cursor

	prefix := "  "
	if selected {
		prefix = styles.AccentText.Render("> ")
	}

	bg, fg := string(p.Background), string(p.Foreground)
	if m.swapped[i] {
		bg, fg = fg, bg
	}

	// Room left for the sample after the prefix, two swatches, swap marker
	// and padding.
	room := m.width - 4 - 2 - 2*components.SwatchWidth - 2 - 5
	sample := m.sampleText
	if room > 0 && ansi.StringWidth(sample) > room {
		sample = ansi.Truncate(sample, room, "…")
	}

	return prefix +
		components.Swatch(string(p.Background), selected) +
		components.Swatch(string(p.Foreground), false) + " " +
		styles.Sample(bg, fg).Render(sample) +
		styles.Sample(bg, fg).Render("⇔")
}
