package colour

import "math"

// sixthTurn is 60 degrees expressed as a fraction of the colour wheel.
const sixthTurn = 60.0 / 360.0

// HSV converts to the HSV colour space.
// Achromatic colours (zero saturation) get a hue of 0.
func (c RGB) HSV() HSV {
	v := math.Max(math.Max(c.R, c.G), c.B)
	d := v - math.Min(math.Min(c.R, c.G), c.B)

	var h, s float64
	if v != 0 {
		s = d / v
	}

	if s != 0 {
		// Channel precedence on ties is R, then G, then B.
		switch v {
		case c.R:
			h = (c.G - c.B) / d
		case c.G:
			h = 2 + (c.B-c.R)/d
		default:
			h = 4 + (c.R-c.G)/d
		}
	}

	h *= sixthTurn
	if h < 0 {
		h++
	}

	return NewHSV(h, s, v)
}

// CMYK converts to the CMYK colour space using the naive complement formula.
func (c RGB) CMYK() CMYK {
	cy := 1 - c.R
	m := 1 - c.G
	y := 1 - c.B
	k := math.Min(math.Min(cy, m), y)

	return NewCMYK(cy-k, m-k, y-k, k)
}

// RGB converts to the RGB colour space.
func (c CMYK) RGB() RGB {
	return NewRGB(
		1-math.Min(1, c.C+c.K),
		1-math.Min(1, c.M+c.K),
		1-math.Min(1, c.Y+c.K),
	)
}

// HSV converts to the HSV colour space by way of RGB.
func (c CMYK) HSV() HSV {
	return c.RGB().HSV()
}

// RGB converts to the RGB colour space.
func (c HSV) RGB() RGB {
	if c.S == 0 {
		return NewRGB(c.V, c.V, c.V)
	}

	h := c.H / sixthTurn
	i := int(math.Floor(h))
	f := h - float64(i)
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	switch i {
	case 0:
		return NewRGB(c.V, t, p)
	case 1:
		return NewRGB(q, c.V, p)
	case 2:
		return NewRGB(p, c.V, t)
	case 3:
		return NewRGB(p, q, c.V)
	case 4:
		return NewRGB(t, p, c.V)
	default:
		// Sector 5 and any index outside 0-4, e.g. H == 1.
		return NewRGB(c.V, p, q)
	}
}

// CMYK converts to the CMYK colour space by way of RGB.
func (c HSV) CMYK() CMYK {
	return c.RGB().CMYK()
}
