package color

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/tui"

	"github.com/spf13/cobra"
)

func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [value]",
		Short: "Set the manual input color",
		Long: `Set the manual input color and print its complement.

Any text is accepted: characters other than 0-9, a-f and A-F are dropped,
only the first six digits are kept and shorter values are left-padded with
zeros. An empty value resets the input to 000000.

When no value is given and running in a terminal, prompts for one.

Examples:
  hexpair color set "#1a2b3c"
  hexpair color set 12ab         # becomes 0012ab`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var raw string
	switch {
	case len(args) == 1:
		raw = args[0]
	case isTerminal():
		raw, err = tui.PromptHexInput(s.mgr.Input())
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Input unchanged.")
			return nil
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("a value is required in a non-interactive session")
	}

	if _, err := s.mgr.Dispatch(palette.Submit(raw)); err != nil {
		return fmt.Errorf("failed to save input: %w", err)
	}

	input := s.mgr.Input()
	complement, _ := palette.Complement(input)
	annotate(cmd, s.mgr.List(), input)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Input:\t%s\n", input.Hash())
	fmt.Fprintf(w, "  Complement:\t%s\n", complement.Hash())
	w.Flush()
	return nil
}
