package color

import (
	"fmt"
	"math"
	"text/tabwriter"

	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/tui/styles"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <value>",
		Short: "Describe a color and its complement",
		Long: `Normalize a color value and print its RGB and HSL components, its
complement and the contrast ratio between the two.

Examples:
  hexpair color show "#1a2b3c"
  hexpair color show ff0`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	c := palette.NormalizeHexInput(args[0])
	complement, err := palette.Complement(c)
	if err != nil {
		return err
	}

	r, g, b, err := c.RGB()
	if err != nil {
		return err
	}

	cc, err := colorful.Hex(c.Hash())
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", c.Hash(), err)
	}
	comp, err := colorful.Hex(complement.Hash())
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", complement.Hash(), err)
	}
	h, s, l := cc.Hsl()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Color:\t%s\n", c.Upper().Hash())
	fmt.Fprintf(w, "  RGB:\t%d, %d, %d\n", r, g, b)
	fmt.Fprintf(w, "  HSL:\t%.0f°, %.0f%%, %.0f%%\n", h, s*100, l*100)
	fmt.Fprintf(w, "  Complement:\t%s\n", complement.Hash())
	fmt.Fprintf(w, "  Contrast:\t%.2f:1\n", contrastRatio(cc, comp))
	w.Flush()

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "  "+styles.Sample(string(c), string(complement)).Render(" "+c.Upper().Hash()+" "))
	return nil
}

// contrastRatio is the WCAG 2 contrast ratio between two colors, from 1 to 21.
func contrastRatio(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
