package color

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hexpair/internal/auditlog"
	"nathanbeddoewebdev/hexpair/internal/palette"

	"github.com/spf13/cobra"
)

// pairView is the JSON shape of one pair for "list -o json".
type pairView struct {
	Index      int    `json:"index"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

func printPairsJSON(cmd *cobra.Command, list palette.List) error {
	pairs := list.Pairs()
	views := make([]pairView, len(pairs))
	for i, p := range pairs {
		views[i] = pairView{Index: i + 1, Background: string(p.Background), Foreground: string(p.Foreground)}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func printPairsTable(cmd *cobra.Command, list palette.List) {
	pairs := list.Pairs()
	if len(pairs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No colors yet. Run \"hexpair color generate\" to add a pair.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tBACKGROUND\tFOREGROUND")
	fmt.Fprintln(w, "-\t----------\t----------")
	for i, p := range pairs {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, p.Background.Hash(), p.Foreground.Hash())
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d pairs\n", len(pairs), palette.MaxPairs)
}

// annotate attaches the palette state to the audit entry the root command
// writes for this run.
func annotate(cmd *cobra.Command, list palette.List, color palette.Color) {
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Color:     string(color),
		PairCount: list.PairCount(),
	}))
}

func lastBackground(list palette.List) palette.Color {
	if p, ok := list.Pair(list.PairCount() - 1); ok {
		return p.Background
	}
	return ""
}
