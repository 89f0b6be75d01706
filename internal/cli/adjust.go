package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
)

// newAdjustCmd builds the darken or lighten command; both share flags and
// output and differ only in which adjustment they apply.
func newAdjustCmd(a *app, op string) *cobra.Command {
	var step float64

	adjust := colour.Color.Darken
	verb := "Reduce"
	if op == "lighten" {
		adjust = colour.Color.Lighten
		verb = "Raise"
	}

	cmd := &cobra.Command{
		Use:   op + " <colour>...",
		Short: fmt.Sprintf("%s the HSV brightness of colours", verb),
		Long: fmt.Sprintf(`%s the HSV brightness (value) of each colour by --step, keeping hue,
saturation and alpha, and print the resulting hex codes.

Examples:
  # %s by 10%% (the default)
  tincture %s 3a7bd5

  # %s by a quarter
  tincture %s --step 0.25 teal`, verb, op, op, op, op),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			preview := a.preview.enabled(cmd)
			for _, c := range colours {
				adjusted := adjust(c, step)
				a.logger.Debug(op, "from", c.HSV().String(), "to", adjusted.HSV().String(), "step", step)
				if _, err := fmt.Fprintf(out(cmd), "%s -> %s\n", colourLabel(c, preview), colourLabel(adjusted, preview)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(newUnitValue(&step, 0.1), "step", "brightness step in [0, 1]")
	return cmd
}
