// Package colour provides the RGB, HSV and CMYK colour models, the conversions
// between them and a unified Color value that keeps all three in sync.
package colour

import (
	"fmt"
	"math"
)

// Clip limits v to the closed range [lo, hi]. NaN maps to lo.
func Clip(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clipUnit limits v to a colour component's range [0, 1].
func clipUnit(v float64) float64 {
	return Clip(v, 0, 1)
}

// RGB holds red, green and blue components in [0, 1].
// Build values with NewRGB so out of range input is saturated.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// NewRGB creates an RGB value, clipping every channel to [0, 1].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: clipUnit(r), G: clipUnit(g), B: clipUnit(b)}
}

// String returns the components as "rgb(r, g, b)" on the 0-255 scale.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", toByte(c.R), toByte(c.G), toByte(c.B))
}

// HSV holds hue, saturation and brightness (value) in [0, 1].
// Hue is a fraction of the colour wheel rather than degrees.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// NewHSV creates an HSV value, clipping every channel to [0, 1].
func NewHSV(h, s, v float64) HSV {
	return HSV{H: clipUnit(h), S: clipUnit(s), V: clipUnit(v)}
}

// Degrees returns the hue as an angle in [0, 360].
func (c HSV) Degrees() float64 {
	return c.H * 360
}

// String returns the components as "hsv(h°, s%, v%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f°, %.1f%%, %.1f%%)", c.Degrees(), c.S*100, c.V*100)
}

// CMYK holds cyan, magenta, yellow and key (black) in [0, 1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// NewCMYK creates a CMYK value, clipping every channel to [0, 1].
func NewCMYK(c, m, y, k float64) CMYK {
	return CMYK{C: clipUnit(c), M: clipUnit(m), Y: clipUnit(y), K: clipUnit(k)}
}

// String returns the components as "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%.1f%%, %.1f%%, %.1f%%, %.1f%%)", c.C*100, c.M*100, c.Y*100, c.K*100)
}
