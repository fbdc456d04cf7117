package color

import (
	"fmt"
	"strconv"

	"nathanbeddoewebdev/hexpair/internal/clipboard"
	"nathanbeddoewebdev/hexpair/internal/config"
	"nathanbeddoewebdev/hexpair/internal/palette"

	"github.com/spf13/cobra"
)

func CopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <index>",
		Short: "Copy a pair's color to the clipboard",
		Long: `Copy the background (or, with --fg, the foreground) of a pair to the
system clipboard. Pairs are numbered from 1 as shown by "hexpair color list".

The copied text follows the copy-format setting: RRGGBB or #RRGGBB.

Examples:
  hexpair color copy 1
  hexpair color copy 2 --fg`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCopy,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("fg", false, "Copy the foreground (complement) instead of the background")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	fg, _ := cmd.Flags().GetBool("fg")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.mgr.List()
	pair, ok := list.Pair(index - 1)
	if !ok {
		return fmt.Errorf("no pair %d (palette has %d)", index, list.PairCount())
	}
	color := pair.Background
	if fg {
		color = pair.Foreground
	}
	annotate(cmd, list, color)

	copier := clipboard.Copier{W: clipboardWriter, Format: cfg.FormatColor}
	s.mgr.Subscribe(copier.Observer(func(text string) {
		fmt.Fprintln(cmd.OutOrStdout(), clipboard.Confirmation(text))
	}))

	if _, err := s.mgr.Dispatch(palette.Select(color)); err != nil {
		return err
	}
	return nil
}
