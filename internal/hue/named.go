// Package hue maintains a registry of named hues positioned around the colour
// wheel and answers nearest-hue queries on it.
//
// Hues are fractions of a full turn in [0, 1), so 0 is red and 1/3 is green.
package hue

import (
	"fmt"
	"math"
)

// PrimaryVariance is the default tolerance used by Registry.IsPrimary.
const PrimaryVariance = 0.01

// Standard hue names.
const (
	Red    = "red"
	Orange = "orange"
	Yellow = "yellow"
	Lime   = "lime"
	Green  = "green"
	Teal   = "teal"
	Cyan   = "cyan"
	Azure  = "azure"
	Blue   = "blue"
	Indigo = "indigo"
	Purple = "purple"
	Pink   = "pink"
)

// NamedHue is a hue associated with a name.
type NamedHue struct {
	Name    string  `json:"name" yaml:"name"`
	Hue     float64 `json:"hue" yaml:"hue"`
	Primary bool    `json:"primary" yaml:"primary"`
}

// Degrees returns the hue as an angle in [0, 360).
func (n NamedHue) Degrees() float64 {
	return n.Hue * 360
}

// String implements fmt.Stringer.
func (n NamedHue) String() string {
	return fmt.Sprintf("NamedHue %s at %g°", n.Name, n.Degrees())
}

// standardHues seeds every new registry: twelve hues at 30° steps from red.
var standardHues = []NamedHue{
	{Name: Red, Hue: 0, Primary: true},
	{Name: Orange, Hue: 30 / 360.0, Primary: true},
	{Name: Yellow, Hue: 60 / 360.0, Primary: true},
	{Name: Lime, Hue: 90 / 360.0, Primary: false},
	{Name: Green, Hue: 120 / 360.0, Primary: true},
	{Name: Teal, Hue: 150 / 360.0, Primary: false},
	{Name: Cyan, Hue: 180 / 360.0, Primary: false},
	{Name: Azure, Hue: 210 / 360.0, Primary: false},
	{Name: Blue, Hue: 240 / 360.0, Primary: true},
	{Name: Indigo, Hue: 270 / 360.0, Primary: false},
	{Name: Purple, Hue: 300 / 360.0, Primary: true},
	{Name: Pink, Hue: 330 / 360.0, Primary: true},
}

// Standard returns a copy of the twelve standard hues in wheel order.
func Standard() []NamedHue {
	out := make([]NamedHue, len(standardHues))
	copy(out, standardHues)
	return out
}

// StandardHue returns the standard hue with the given name.
func StandardHue(name string) (NamedHue, bool) {
	for _, n := range standardHues {
		if n.Name == name {
			return n, true
		}
	}
	return NamedHue{}, false
}

// Normalize wraps h into [0, 1). NaN and infinities have no position on the
// wheel and map to 0.
func Normalize(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		// -tiny + 1 rounds up to 1.
		h = 0
	}
	return h
}

// Distance returns the circular distance between two hues, in [0, 0.5].
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	return math.Min(d, 1-d)
}

// FromDegrees converts an angle in degrees to a hue in [0, 1).
func FromDegrees(deg float64) float64 {
	return Normalize(deg / 360)
}
