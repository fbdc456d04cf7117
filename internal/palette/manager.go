package palette

import (
	"errors"
	"fmt"
)

// CommandKind identifies a Manager command.
type CommandKind int

const (
	// CmdGenerate appends a random pair.
	CmdGenerate CommandKind = iota
	// CmdClear empties the list.
	CmdClear
	// CmdSubmit normalizes Command.Raw into the manual input.
	CmdSubmit
	// CmdSelect reports Command.Color as picked by the user.
	CmdSelect
)

func (k CommandKind) String() string {
	switch k {
	case CmdGenerate:
		return "generate"
	case CmdClear:
		return "clear"
	case CmdSubmit:
		return "submit"
	case CmdSelect:
		return "select"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a discrete request for the Manager.
type Command struct {
	Kind  CommandKind
	Raw   string // CmdSubmit
	Color Color  // CmdSelect
}

// Generate returns a CmdGenerate command.
func Generate() Command { return Command{Kind: CmdGenerate} }

// ClearAll returns a CmdClear command.
func ClearAll() Command { return Command{Kind: CmdClear} }

// Submit returns a CmdSubmit command for raw user text.
func Submit(raw string) Command { return Command{Kind: CmdSubmit, Raw: raw} }

// Select returns a CmdSelect command.
func Select(c Color) Command { return Command{Kind: CmdSelect, Color: c} }

// Observer receives notifications after the Manager handles a command.
type Observer interface {
	// ColorsChanged is called with the new list after generate or clear.
	ColorsChanged(List) error
	// InputChanged is called with the normalized manual input and its complement.
	InputChanged(input, complement Color) error
	// ColorSelected is called when a color is picked, e.g. to copy it.
	ColorSelected(Color) error
}

// ObserverFuncs adapts optional functions to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	OnColorsChanged func(List) error
	OnInputChanged  func(input, complement Color) error
	OnColorSelected func(Color) error
}

func (o ObserverFuncs) ColorsChanged(l List) error {
	if o.OnColorsChanged == nil {
		return nil
	}
	return o.OnColorsChanged(l)
}

func (o ObserverFuncs) InputChanged(input, complement Color) error {
	if o.OnInputChanged == nil {
		return nil
	}
	return o.OnInputChanged(input, complement)
}

func (o ObserverFuncs) ColorSelected(c Color) error {
	if o.OnColorSelected == nil {
		return nil
	}
	return o.OnColorSelected(c)
}

// Manager owns a List and the manual input value. It is the single entry
// point hosts use to mutate palette state.
//
// A Manager is not safe for concurrent use. Hosts serialize commands.
type Manager struct {
	list      List
	input     Color
	gen       *Generator
	observers []Observer
}

// NewManager returns a Manager seeded with a restored list and input.
// An invalid input falls back to DefaultInput. A nil gen uses Random().
func NewManager(list List, input Color, gen *Generator) *Manager {
	if gen == nil {
		gen = Random()
	}
	if !input.Valid() {
		input = DefaultInput
	}
	return &Manager{list: list.Clone(), input: input, gen: gen}
}

// Subscribe registers an observer. Observers are called in registration order.
func (m *Manager) Subscribe(o Observer) {
	m.observers = append(m.observers, o)
}

// List returns a copy of the current list.
func (m *Manager) List() List { return m.list.Clone() }

// Input returns the current manual input value.
func (m *Manager) Input() Color { return m.input }

// Replace swaps in state loaded from elsewhere (another process wrote the
// store). Observers are not notified.
func (m *Manager) Replace(list List, input Color) {
	m.list = list.Clone()
	if input.Valid() {
		m.input = input
	}
}

// Dispatch applies cmd and returns a copy of the resulting list. The mutation
// always completes; observer errors are joined and returned afterwards.
func (m *Manager) Dispatch(cmd Command) (List, error) {
	var err error
	switch cmd.Kind {
	case CmdGenerate:
		before := len(m.list)
		m.list = AppendPair(m.list, m.gen)
		if len(m.list) != before {
			err = m.notify(func(o Observer) error { return o.ColorsChanged(m.List()) })
		}

	case CmdClear:
		m.list = Clear(m.list)
		err = m.notify(func(o Observer) error { return o.ColorsChanged(m.List()) })

	case CmdSubmit:
		m.input = NormalizeHexInput(cmd.Raw)
		complement, _ := Complement(m.input)
		err = m.notify(func(o Observer) error { return o.InputChanged(m.input, complement) })

	case CmdSelect:
		if verr := cmd.Color.Validate(); verr != nil {
			return m.List(), verr
		}
		err = m.notify(func(o Observer) error { return o.ColorSelected(cmd.Color) })

	default:
		return m.List(), fmt.Errorf("palette: unknown command %v", cmd.Kind)
	}
	return m.List(), err
}

func (m *Manager) notify(fn func(Observer) error) error {
	var errs []error
	for _, o := range m.observers {
		if err := fn(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
