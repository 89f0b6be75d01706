package colour

import "fmt"

// Color is a colour held in RGB, HSV and CMYK at once, plus an alpha channel.
//
// The three representations always describe the same colour: every
// constructor takes one of them as authoritative and derives the other two
// before returning. Color values are immutable; adjustments return copies.
type Color struct {
	rgb   RGB
	hsv   HSV
	cmyk  CMYK
	alpha float64
}

// FromRGB creates a Color from RGB components. Channels are clipped even when
// rgb was built as a struct literal.
func FromRGB(rgb RGB, alpha float64) Color {
	rgb = NewRGB(rgb.R, rgb.G, rgb.B)
	return Color{
		rgb:   rgb,
		hsv:   rgb.HSV(),
		cmyk:  rgb.CMYK(),
		alpha: clipUnit(alpha),
	}
}

// FromHSV creates a Color from HSV components.
func FromHSV(hsv HSV, alpha float64) Color {
	hsv = NewHSV(hsv.H, hsv.S, hsv.V)
	rgb := hsv.RGB()
	return Color{
		rgb:   rgb,
		hsv:   hsv,
		cmyk:  rgb.CMYK(),
		alpha: clipUnit(alpha),
	}
}

// FromCMYK creates a Color from CMYK components.
func FromCMYK(cmyk CMYK, alpha float64) Color {
	cmyk = NewCMYK(cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	rgb := cmyk.RGB()
	return Color{
		rgb:   rgb,
		hsv:   rgb.HSV(),
		cmyk:  cmyk,
		alpha: clipUnit(alpha),
	}
}

// FromARGB creates a Color from a packed 0xAARRGGBB word.
func FromARGB(argb uint32) Color {
	v := UnpackARGB(argb)
	return FromRGB(v.RGB, v.Alpha)
}

// FromHex creates a Color from a hex string. Strings with fewer than eight
// digits are read as RRGGBB with full opacity, longer ones as AARRGGBB.
func FromHex(s string) (Color, error) {
	digits := len(s)
	if len(s) > 0 && s[0] == '#' {
		digits--
	}

	if digits < argbHexDigits {
		rgb, err := DecodeRGB(s)
		if err != nil {
			return Color{}, err
		}
		return FromRGB(rgb, 1), nil
	}

	v, err := DecodeRGBA(s)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(v.RGB, v.Alpha), nil
}

// RGB returns the RGB representation.
func (c Color) RGB() RGB { return c.rgb }

// HSV returns the HSV representation.
func (c Color) HSV() HSV { return c.hsv }

// CMYK returns the CMYK representation.
func (c Color) CMYK() CMYK { return c.cmyk }

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return c.alpha }

// ARGB packs the colour into a 0xAARRGGBB word.
func (c Color) ARGB() uint32 {
	return RGBA{RGB: c.rgb, Alpha: c.alpha}.Pack()
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return hexRGB(c.rgb)
}

// HexARGB returns the colour as "#aarrggbb".
func (c Color) HexARGB() string {
	return fmt.Sprintf("#%08x", c.ARGB())
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.alpha*0xffff + 0.5)
	r = uint32(c.rgb.R*c.alpha*0xffff + 0.5)
	g = uint32(c.rgb.G*c.alpha*0xffff + 0.5)
	b = uint32(c.rgb.B*c.alpha*0xffff + 0.5)
	return r, g, b, a
}

// String returns a human-readable description of the colour.
func (c Color) String() string {
	if c.alpha < 1 {
		return fmt.Sprintf("%s (alpha %.2f)", c.Hex(), c.alpha)
	}
	return c.Hex()
}
