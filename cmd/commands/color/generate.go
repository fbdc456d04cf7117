package color

import (
	"fmt"

	"nathanbeddoewebdev/hexpair/internal/palette"

	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "add"},
		Short:   "Append random color pairs",
		Long: fmt.Sprintf(`Append random background colors, each paired with its complement.

The palette holds at most %d pairs. Generating into a full palette leaves it
unchanged.

Examples:
  hexpair color generate
  hexpair color generate -n 3`, palette.MaxPairs),
		Args:         cobra.NoArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().IntP("count", "n", 1, "Number of pairs to generate")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.mgr.List()
	for range count {
		if list.Full() {
			fmt.Fprintf(cmd.OutOrStdout(), "Palette is full (%d pairs).\n", palette.MaxPairs)
			break
		}
		if list, err = s.mgr.Dispatch(palette.Generate()); err != nil {
			return fmt.Errorf("failed to save palette: %w", err)
		}
	}

	annotate(cmd, list, lastBackground(list))
	printPairsTable(cmd, list)
	return nil
}
