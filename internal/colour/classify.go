package colour

import "github.com/jmylchreest/tincture/internal/hue"

// Default classification thresholds.
const (
	// DefaultBlackPoint is the highest channel value still classified as black.
	DefaultBlackPoint = 0.08
	// DefaultWhitePoint is the lowest channel value classified as white.
	// Only pure (1, 1, 1) qualifies by default.
	DefaultWhitePoint = 1.0
	// DefaultGreyThreshold is the saturation below which a colour is grey.
	DefaultGreyThreshold = 0.01
)

// Thresholds configures the black, white and grey checks.
type Thresholds struct {
	BlackPoint    float64 `json:"black_point" yaml:"black_point"`
	WhitePoint    float64 `json:"white_point" yaml:"white_point"`
	GreyThreshold float64 `json:"grey_threshold" yaml:"grey_threshold"`
}

// DefaultThresholds returns the standard classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BlackPoint:    DefaultBlackPoint,
		WhitePoint:    DefaultWhitePoint,
		GreyThreshold: DefaultGreyThreshold,
	}
}

// IsBlack reports whether rgb is a neutral at or below the black point.
func (t Thresholds) IsBlack(rgb RGB) bool {
	return isNeutral(rgb) && rgb.R <= t.BlackPoint
}

// IsWhite reports whether rgb is a neutral at or above the white point.
func (t Thresholds) IsWhite(rgb RGB) bool {
	return isNeutral(rgb) && rgb.R >= t.WhitePoint
}

// IsGrey reports whether hsv is saturated less than the grey threshold.
func (t Thresholds) IsGrey(hsv HSV) bool {
	return hsv.S < t.GreyThreshold
}

func isNeutral(rgb RGB) bool {
	return rgb.R == rgb.G && rgb.R == rgb.B
}

// IsBlack reports whether the colour is black under the default thresholds.
func (c Color) IsBlack() bool {
	return DefaultThresholds().IsBlack(c.rgb)
}

// IsWhite reports whether the colour is white under the default thresholds.
func (c Color) IsWhite() bool {
	return DefaultThresholds().IsWhite(c.rgb)
}

// IsGrey reports whether the colour is grey under the default thresholds.
func (c Color) IsGrey() bool {
	return DefaultThresholds().IsGrey(c.hsv)
}

// IsPrimary reports whether the colour's hue is within the default variance
// of a primary hue in the process-wide registry.
func (c Color) IsPrimary() bool {
	return hue.Default().IsPrimary(c.hsv.H)
}

// Luminance returns the relative luminance using the sRGB primaries.
// Alpha is ignored.
func (c Color) Luminance() float64 {
	return 0.2126*c.rgb.R + 0.7152*c.rgb.G + 0.0722*c.rgb.B
}

// Classification summarises every check for a single colour.
type Classification struct {
	Black      bool    `json:"black"`
	White      bool    `json:"white"`
	Grey       bool    `json:"grey"`
	Primary    bool    `json:"primary"`
	NearestHue string  `json:"nearest_hue,omitempty"`
	Luminance  float64 `json:"luminance"`
}

// Classifier evaluates colours against explicit thresholds and a hue registry.
type Classifier struct {
	Thresholds Thresholds
	Hues       *hue.Registry
	// Variance is the primary hue tolerance; zero means hue.PrimaryVariance.
	Variance float64
}

// NewClassifier returns a Classifier with default thresholds over hues.
func NewClassifier(hues *hue.Registry) *Classifier {
	return &Classifier{
		Thresholds: DefaultThresholds(),
		Hues:       hues,
		Variance:   hue.PrimaryVariance,
	}
}

// IsPrimary reports whether c's hue is close to a registered primary hue.
func (cl *Classifier) IsPrimary(c Color) bool {
	return cl.registry().IsPrimaryWithin(c.hsv.H, cl.variance())
}

// Classify runs every check on c.
func (cl *Classifier) Classify(c Color) Classification {
	result := Classification{
		Black:     cl.Thresholds.IsBlack(c.rgb),
		White:     cl.Thresholds.IsWhite(c.rgb),
		Grey:      cl.Thresholds.IsGrey(c.hsv),
		Primary:   cl.IsPrimary(c),
		Luminance: c.Luminance(),
	}
	if nearest, ok := cl.registry().Find(c.hsv.H, false); ok {
		result.NearestHue = nearest.Name
	}
	return result
}

func (cl *Classifier) registry() *hue.Registry {
	if cl.Hues == nil {
		return hue.Default()
	}
	return cl.Hues
}

func (cl *Classifier) variance() float64 {
	if cl.Variance <= 0 {
		return hue.PrimaryVariance
	}
	return cl.Variance
}
