package color

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List color pairs",
		Long: `List the stored color pairs in insertion order.

Examples:
  hexpair color list
  hexpair color list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.mgr.List()
	annotate(cmd, list, "")

	if output == "json" {
		return printPairsJSON(cmd, list)
	}
	printPairsTable(cmd, list)
	return nil
}
