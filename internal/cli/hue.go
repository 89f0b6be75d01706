package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/hue"
)

func newHueCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hue",
		Short: "Query and extend the named hue registry",
		Long: `Query and extend the registry of named hues.

Twelve standard hues are always registered, 30° apart starting at red; red,
orange, yellow, green, blue, purple and pink are primary. Custom hues are
loaded from the file given by --catalog or TINCTURE_HUE_CATALOG.

Hue arguments accept degrees ("135", "135deg") or turns ("0.375t").`,
	}

	cmd.AddCommand(
		newHueListCmd(a),
		newHueFindCmd(a),
		newHueGetCmd(a),
		newHueRegisterCmd(a),
	)
	return cmd
}

func newHueListCmd(a *app) *cobra.Command {
	var (
		primaryOnly bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered hues in wheel order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			hues := a.hues.All()
			if primaryOnly {
				hues = a.hues.Primaries()
			}
			return a.writeHues(cmd, hues, f)
		},
	}

	cmd.Flags().BoolVar(&primaryOnly, "primary", false, "list primary hues only")
	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "output format (table, json)")
	return cmd
}

func newHueFindCmd(a *app) *cobra.Command {
	var (
		primaryOnly bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "find <hue>",
		Short: "Find the registered hue nearest to a hue",
		Long: `Find the registered hue nearest to the given hue, measuring distance
around the colour wheel so 355° is close to red.

Examples:
  tincture hue find 130
  tincture hue find --primary 0.36t`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			h, err := parseHue(args[0])
			if err != nil {
				return err
			}

			nearest, ok := a.hues.Find(h, primaryOnly)
			if !ok {
				return fmt.Errorf("no hues registered to search")
			}
			a.logger.Debug("nearest hue", "query", h*360, "name", nearest.Name, "distance", hue.Distance(nearest.Hue, h)*360)
			return a.writeHues(cmd, []hue.NamedHue{nearest}, f)
		},
	}

	cmd.Flags().BoolVar(&primaryOnly, "primary", false, "search primary hues only")
	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "output format (table, json)")
	return cmd
}

func newHueGetCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a registered hue by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			n, ok := a.hues.HueForName(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", hue.ErrUnknownHue, args[0])
			}
			return a.writeHues(cmd, []hue.NamedHue{n}, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "output format (table, json)")
	return cmd
}

func newHueRegisterCmd(a *app) *cobra.Command {
	var primary bool

	cmd := &cobra.Command{
		Use:   "register <name> <hue>",
		Short: "Add a named hue to the catalog file",
		Long: `Add or replace a named hue in the catalog file given by --catalog (or
TINCTURE_HUE_CATALOG). The file is created if it does not exist; its format
follows the extension (.json, .yaml, .yml, optionally .xz).

Examples:
  tincture --catalog hues.yaml hue register sea 165
  tincture --catalog hues.json.xz hue register --primary vermilion 15deg`,
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{annotationCreatesCatalog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.config.CatalogPath
			if path == "" {
				return fmt.Errorf("no catalog file given (use --catalog or TINCTURE_HUE_CATALOG)")
			}
			h, err := parseHue(args[1])
			if err != nil {
				return err
			}

			catalog := &hue.Catalog{}
			if _, statErr := os.Stat(path); statErr == nil {
				if catalog, err = hue.LoadCatalog(path); err != nil {
					return fmt.Errorf("failed to load hue catalog: %w", err)
				}
			}

			entry := hue.CatalogEntry{Name: args[0], Degrees: h * 360, Primary: primary}
			if err := a.hues.Register(entry.Name, h, entry.Primary); err != nil {
				return err
			}
			catalog.Add(entry)
			if err := hue.SaveCatalog(path, catalog); err != nil {
				return fmt.Errorf("failed to save hue catalog: %w", err)
			}

			a.infof(cmd, "Registered %s at %g° in %s\n", entry.Name, entry.Degrees, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&primary, "primary", false, "mark the hue as primary")
	return cmd
}

// hueJSON is the JSON shape of a named hue.
type hueJSON struct {
	Name    string  `json:"name"`
	Degrees float64 `json:"degrees"`
	Hue     float64 `json:"hue"`
	Primary bool    `json:"primary"`
	Hex     string  `json:"hex"`
}

func (a *app) writeHues(cmd *cobra.Command, hues []hue.NamedHue, f outputFormat) error {
	if f == formatJSON {
		rows := make([]hueJSON, len(hues))
		for i, n := range hues {
			rows[i] = hueJSON{Name: n.Name, Degrees: n.Degrees(), Hue: n.Hue, Primary: n.Primary, Hex: hueColour(n).Hex()}
		}
		return writeJSON(out(cmd), rows)
	}

	preview := a.preview.enabled(cmd)
	table := NewTable([]string{"NAME", "DEGREES", "PRIMARY", "COLOUR"})
	table.AlignRight(1)
	for _, n := range hues {
		table.AddRow([]string{
			n.Name,
			fmt.Sprintf("%.1f", n.Degrees()),
			yesNo(n.Primary),
			colourLabel(hueColour(n), preview),
		})
	}
	_, err := fmt.Fprint(out(cmd), table.Render())
	return err
}

// hueColour renders a named hue at full saturation and brightness.
func hueColour(n hue.NamedHue) colour.Color {
	return colour.FromHSV(colour.NewHSV(n.Hue, 1, 1), 1)
}
