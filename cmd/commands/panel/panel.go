package panel

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/hexpair/internal/auditlog"
	"nathanbeddoewebdev/hexpair/internal/clipboard"
	"nathanbeddoewebdev/hexpair/internal/config"
	"nathanbeddoewebdev/hexpair/internal/database"
	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/palettestore"
	"nathanbeddoewebdev/hexpair/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// NewCommand returns the "panel" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive color panel",
		Long: `Open a full-screen panel showing the palette, the manual input and a
sample text rendered on every pair.

Keys:
  g        generate a pair
  c        clear all pairs (asks first)
  j/k      move between pairs
  enter/y  copy background        Y  copy foreground
  s        swap sample text colors
  e        edit the manual input
  q        quit

Changes made by other hexpair commands while the panel is open are picked
up automatically.`,
		Args:         cobra.NoArgs,
		RunE:         runPanel,
		SilenceUsage: true,
	}

	return cmd
}

func runPanel(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the panel requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := database.DefaultPath()
	if err != nil {
		return err
	}
	store, err := palettestore.OpenAt(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	state, err := store.Load()
	if err != nil {
		return err
	}

	mgr := palette.NewManager(state.Colors, state.Input, nil)
	mgr.Subscribe(palettestore.Observer(store))

	return tui.RunPanel(tui.PanelDeps{
		Manager:    mgr,
		Store:      store,
		Copier:     clipboard.Copier{W: clipboard.System{}, Format: cfg.FormatColor},
		SampleText: cfg.EffectiveSampleText(),
		Audit:      auditlog.Record,
	}, dbPath)
}
