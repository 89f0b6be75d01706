package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Colorful returns the colour as a go-colorful value, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.rgb.R, G: c.rgb.G, B: c.rgb.B}
}

// FromColorful creates a Color from a go-colorful value. Channels outside the
// RGB gamut are clipped.
func FromColorful(c colorful.Color, alpha float64) Color {
	return FromRGB(NewRGB(c.R, c.G, c.B), alpha)
}

// NearestName returns the SVG colour keyword closest to c by Euclidean RGB
// distance, along with that distance. Alpha is ignored; on ties the
// alphabetically first keyword wins.
func NearestName(c Color) (string, float64) {
	target := c.Colorful()

	best, bestDist := "", 0.0
	for _, name := range ColourNames() {
		named := fromKeyword(colornames.Map[name]).Colorful()
		if d := target.DistanceRgb(named); best == "" || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, bestDist
}
