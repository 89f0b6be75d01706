package colour

// Darken returns a copy with brightness reduced by step, rebuilt from HSV.
// Hue, saturation and alpha are kept; step is clipped to [0, 1].
func (c Color) Darken(step float64) Color {
	hsv := NewHSV(c.hsv.H, c.hsv.S, c.hsv.V-clipUnit(step))
	return FromHSV(hsv, c.alpha)
}

// Lighten returns a copy with brightness raised by step, rebuilt from HSV.
func (c Color) Lighten(step float64) Color {
	hsv := NewHSV(c.hsv.H, c.hsv.S, c.hsv.V+clipUnit(step))
	return FromHSV(hsv, c.alpha)
}

// WithAlpha returns a copy with a different alpha channel.
func (c Color) WithAlpha(alpha float64) Color {
	c.alpha = clipUnit(alpha)
	return c
}
