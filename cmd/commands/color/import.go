package color

import (
	"fmt"
	"io"
	"os"

	"nathanbeddoewebdev/hexpair/internal/palettestore"

	"github.com/spf13/cobra"
)

func ImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the palette from a JSON file",
		Long: `Replace the palette with the colors in a file written by
"hexpair color export". Use "-" to read from stdin.

Entries beyond the pair limit and a trailing background without a
foreground are dropped. Any entry that is not a six-digit hex code rejects
the whole file and leaves the palette unchanged.

Examples:
  hexpair color import palette.json
  cat palette.json | hexpair color import -`,
		Args:         cobra.ExactArgs(1),
		RunE:         runImport,
		SilenceUsage: true,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	list, err := palettestore.ReadJSON(r)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.mgr.Replace(list, s.mgr.Input())
	if err := s.store.SaveColors(s.mgr.List()); err != nil {
		return err
	}
	annotate(cmd, list, lastBackground(list))

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pair(s).\n", list.PairCount())
	return nil
}
