package color

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/hexpair/internal/palettestore"

	"github.com/spf13/cobra"
)

func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the palette as JSON",
		Long: `Write the palette as {"colors": [{"value": "RRGGBB"}, ...]} to stdout or
a file. The output can be loaded back with "hexpair color import".

Examples:
  hexpair color export
  hexpair color export --file palette.json`,
		Args:         cobra.NoArgs,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("file", "f", "", "Write to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.mgr.List()
	annotate(cmd, list, "")

	if path == "" {
		return palettestore.WriteJSON(cmd.OutOrStdout(), list)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := palettestore.WriteJSON(f, list); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pair(s) to %s\n", list.PairCount(), path)
	return nil
}
