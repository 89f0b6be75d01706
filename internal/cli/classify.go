package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/hue"
)

type classifyJSON struct {
	Input string `json:"input"`
	Hex   string `json:"hex"`
	colour.Classification
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		format        string
		blackPoint    float64
		whitePoint    float64
		greyThreshold float64
		variance      float64
	)

	cmd := &cobra.Command{
		Use:   "classify <colour>...",
		Short: "Classify colours as black, white, grey or primary",
		Long: `Classify each colour as black, white, grey and/or primary.

A colour is black when all RGB channels are equal and at or below the black
point, white when they are equal and at or above the white point, grey when
its HSV saturation is below the grey threshold, and primary when its hue is
within the variance of a registered primary hue.

Thresholds default to the configuration (TINCTURE_* environment variables or
the .env file) and may be overridden per invocation.

Examples:
  # Classify a few colours
  tincture classify 0a0a0a ffffff ff8000

  # Loosen the white point
  tincture classify --white-point 0.95 fafafa`,
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

			classifier := a.config.Classifier(a.hues)
			flags := cmd.Flags()
			if flags.Changed("black-point") {
				classifier.Thresholds.BlackPoint = blackPoint
			}
			if flags.Changed("white-point") {
				classifier.Thresholds.WhitePoint = whitePoint
			}
			if flags.Changed("grey-threshold") {
				classifier.Thresholds.GreyThreshold = greyThreshold
			}
			if flags.Changed("variance") {
				if variance <= 0 {
					return fmt.Errorf("--variance must be greater than zero")
				}
				classifier.Variance = variance
			}
			a.logger.Debug("classifying", "colours", len(colours), "thresholds", classifier.Thresholds, "variance", classifier.Variance)

			return a.runClassify(cmd, args, colours, classifier, f)
		},
	}

	defaults := colour.DefaultThresholds()
	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "output format (table, json)")
	cmd.Flags().Var(newUnitValue(&blackPoint, defaults.BlackPoint), "black-point", "highest channel value classified as black")
	cmd.Flags().Var(newUnitValue(&whitePoint, defaults.WhitePoint), "white-point", "lowest channel value classified as white")
	cmd.Flags().Var(newUnitValue(&greyThreshold, defaults.GreyThreshold), "grey-threshold", "saturation below which a colour is grey")
	cmd.Flags().Var(newUnitValue(&variance, hue.PrimaryVariance), "variance", "hue tolerance for primary colours")
	return cmd
}

func (a *app) runClassify(cmd *cobra.Command, args []string, colours []colour.Color, classifier *colour.Classifier, f outputFormat) error {
	results := make([]colour.Classification, len(colours))
	for i, c := range colours {
		results[i] = classifier.Classify(c)
	}

	if f == formatJSON {
		rows := make([]classifyJSON, len(colours))
		for i, c := range colours {
			rows[i] = classifyJSON{Input: args[i], Hex: c.Hex(), Classification: results[i]}
		}
		return writeJSON(out(cmd), rows)
	}

	preview := a.preview.enabled(cmd)
	table := NewTable([]string{"COLOUR", "BLACK", "WHITE", "GREY", "PRIMARY", "NEAREST", "LUMINANCE"})
	table.AlignRight(6)
	for i, c := range colours {
		r := results[i]
		table.AddRow([]string{
			colourLabel(c, preview),
			yesNo(r.Black),
			yesNo(r.White),
			yesNo(r.Grey),
			yesNo(r.Primary),
			r.NearestHue,
			formatUnit(r.Luminance),
		})
	}
	_, err := fmt.Fprint(out(cmd), table.Render())
	return err
}
