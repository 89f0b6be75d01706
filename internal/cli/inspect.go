package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
)

// inspectJSON is the JSON shape of one inspected colour.
type inspectJSON struct {
	Input     string      `json:"input"`
	Hex       string      `json:"hex"`
	Name      string      `json:"name"`
	ARGB      string      `json:"argb"`
	RGB       colour.RGB  `json:"rgb"`
	HSV       colour.HSV  `json:"hsv"`
	CMYK      colour.CMYK `json:"cmyk"`
	Alpha     float64     `json:"alpha"`
	Luminance float64     `json:"luminance"`
	Hue       string      `json:"hue,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <colour>...",
		Short: "Show a colour in every colour model",
		Long: `Show each colour as hex, RGB, HSV and CMYK together with its alpha,
relative luminance, the closest SVG colour keyword (prefixed with "~" when
not exact) and the nearest named hue.

Examples:
  # Inspect a hex colour
  tincture inspect 3a7bd5

  # Inspect several colours, including one with alpha, as JSON
  tincture inspect --format json 80ff8800 teal "#202020"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			return a.runInspect(cmd, args, colours, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "output format (table, json)")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, args []string, colours []colour.Color, f outputFormat) error {
	if f == formatJSON {
		results := make([]inspectJSON, len(colours))
		for i, c := range colours {
			results[i] = inspectJSON{
				Input:     args[i],
				Hex:       c.Hex(),
				Name:      nearestName(c),
				ARGB:      c.HexARGB(),
				RGB:       c.RGB(),
				HSV:       c.HSV(),
				CMYK:      c.CMYK(),
				Alpha:     c.Alpha(),
				Luminance: c.Luminance(),
				Hue:       a.nearestHueName(c),
			}
		}
		return writeJSON(out(cmd), results)
	}

	preview := a.preview.enabled(cmd)
	table := NewTable([]string{"COLOUR", "NAME", "RGB", "HSV", "CMYK", "ALPHA", "LUMINANCE", "HUE"})
	table.AlignRight(5)
	table.AlignRight(6)
	for _, c := range colours {
		table.AddRow([]string{
			colourLabel(c, preview),
			nearestName(c),
			c.RGB().String(),
			c.HSV().String(),
			c.CMYK().String(),
			formatUnit(c.Alpha()),
			formatUnit(c.Luminance()),
			a.nearestHueName(c),
		})
	}
	_, err := fmt.Fprint(out(cmd), table.Render())
	return err
}

// nearestHueName names the registered hue closest to c, or "-" for greys.
func (a *app) nearestHueName(c colour.Color) string {
	if a.config.Thresholds.IsGrey(c.HSV()) {
		return "-"
	}
	if n, ok := a.hues.Find(c.HSV().H, false); ok {
		return n.Name
	}
	return "-"
}

// nearestName names the closest SVG keyword, marking inexact matches with "~".
func nearestName(c colour.Color) string {
	name, dist := colour.NearestName(c)
	if dist > 0 {
		return "~" + name
	}
	return name
}
