package color

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/hexpair/internal/clipboard"
	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/palettestore"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// NewCommand returns the "color" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Generate, inspect and copy color pairs",
		Long: fmt.Sprintf(`Manage the palette: a list of up to %d background/foreground pairs where
each foreground is the RGB complement of its background.

The palette and the manual input value are stored locally in
~/.config/hexpair/hexpair.db and shared with "hexpair panel".`, palette.MaxPairs),
		SilenceUsage: true,
	}

	cmd.AddCommand(GenerateCommand())
	cmd.AddCommand(ClearCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(CopyCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ExportCommand())
	cmd.AddCommand(ImportCommand())

	return cmd
}

// Overridden in tests.
var (
	clipboardWriter clipboard.Writer = clipboard.System{}
	isTerminal                       = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// session is an opened palette store and a Manager seeded from it. Every
// list or input change made through mgr is written back to the store.
type session struct {
	store *palettestore.SQLiteRepository
	mgr   *palette.Manager
}

func openSession() (*session, error) {
	store, err := palettestore.Open()
	if err != nil {
		return nil, err
	}

	state, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}

	mgr := palette.NewManager(state.Colors, state.Input, nil)
	mgr.Subscribe(palettestore.Observer(store))

	return &session{store: store, mgr: mgr}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
