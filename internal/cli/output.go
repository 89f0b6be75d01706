package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/tincture/internal/colour"
)

const swatchWidth = 6

// outputFormat selects how command results are rendered.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatTable, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json)", s)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseColours parses every argument, reporting the first failure.
func parseColours(args []string) ([]colour.Color, error) {
	colours := make([]colour.Color, 0, len(args))
	for _, arg := range args {
		c, err := colour.ParseColour(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		colours = append(colours, c)
	}
	return colours, nil
}

// colourLabel returns the hex label for c, prefixed by a swatch when enabled.
func colourLabel(c colour.Color, preview bool) string {
	label := c.Hex()
	if c.Alpha() < 1 {
		label = c.HexARGB()
	}
	if preview {
		return colour.Swatch(c, swatchWidth) + " " + label
	}
	return label
}

func formatUnit(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
