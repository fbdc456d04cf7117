package color

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/tui"

	"github.com/spf13/cobra"
)

func ClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every color pair",
		Long: `Remove every color pair from the palette.

When run in a terminal without --yes, asks for confirmation first.

Examples:
  hexpair color clear
  hexpair color clear --yes`,
		Args:         cobra.NoArgs,
		RunE:         runClear,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	pairs := s.mgr.List().PairCount()
	annotate(cmd, s.mgr.List(), "")

	if !yes {
		if !isTerminal() {
			return fmt.Errorf("refusing to clear without --yes in a non-interactive session")
		}
		ok, err := tui.ConfirmClear(pairs)
		if errors.Is(err, tui.ErrAborted) || (err == nil && !ok) {
			fmt.Fprintln(cmd.OutOrStdout(), "Clear cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if _, err := s.mgr.Dispatch(palette.ClearAll()); err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d pair(s).\n", pairs)
	return nil
}
