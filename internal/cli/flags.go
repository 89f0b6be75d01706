package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/hue"
)

// previewMode controls whether ANSI swatches are printed.
type previewMode string

const (
	previewAuto   previewMode = "auto"
	previewAlways previewMode = "always"
	previewNever  previewMode = "never"
)

var _ pflag.Value = (*previewMode)(nil)

func (p *previewMode) String() string { return string(*p) }

func (p *previewMode) Set(s string) error {
	switch mode := previewMode(strings.ToLower(s)); mode {
	case previewAuto, previewAlways, previewNever:
		*p = mode
		return nil
	default:
		return fmt.Errorf("invalid preview mode %q (valid: auto, always, never)", s)
	}
}

func (p *previewMode) Type() string { return "mode" }

// enabled resolves auto mode by checking whether cmd writes to a terminal.
func (p previewMode) enabled(cmd *cobra.Command) bool {
	switch p {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// unitValue is a float flag clipped to [0, 1].
type unitValue struct {
	dst *float64
}

var _ pflag.Value = unitValue{}

func newUnitValue(dst *float64, def float64) unitValue {
	*dst = colour.Clip(def, 0, 1)
	return unitValue{dst: dst}
}

func (u unitValue) String() string {
	if u.dst == nil {
		return "0"
	}
	return strconv.FormatFloat(*u.dst, 'g', -1, 64)
}

func (u unitValue) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", s)
	}
	*u.dst = colour.Clip(v, 0, 1)
	return nil
}

func (u unitValue) Type() string { return "unit" }

// parseHue reads a hue written in degrees ("135", "135deg", "135°") or turns
// ("0.375t", "0.375turn") and returns it as a fraction in [0, 1).
func parseHue(s string) (float64, error) {
	raw := strings.ToLower(strings.TrimSpace(s))

	for _, suffix := range []string{"turn", "t"} {
		if strings.HasSuffix(raw, suffix) {
			v, err := parseFinite(strings.TrimSuffix(raw, suffix))
			if err != nil {
				return 0, fmt.Errorf("invalid hue %q: %w", s, err)
			}
			return hue.Normalize(v), nil
		}
	}

	raw = strings.TrimSuffix(strings.TrimSuffix(raw, "deg"), "°")
	v, err := parseFinite(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid hue %q: %w", s, err)
	}
	return hue.FromDegrees(v), nil
}

// parseFinite parses a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

var errNotFinite = errors.New("not a finite number")
