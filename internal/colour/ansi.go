package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func ansiBackground(rgb RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, toByte(rgb.R), toByte(rgb.G), toByte(rgb.B), ansiSuffix)
}

func ansiForeground(rgb RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, toByte(rgb.R), toByte(rgb.G), toByte(rgb.B), ansiSuffix)
}

// Swatch returns a solid block of the colour width cells wide.
func Swatch(c Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBackground(c.rgb) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with centred text drawn in black or white,
// whichever reads better against the colour.
func SwatchWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := NewRGB(1, 1, 1)
	if c.Luminance() > 0.5 {
		fg = NewRGB(0, 0, 0)
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return ansiBackground(c.rgb) + ansiForeground(fg) + display + ansiReset
}

// FormatWithSwatch formats a colour as its swatch followed by its hex code.
func FormatWithSwatch(c Color, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}
