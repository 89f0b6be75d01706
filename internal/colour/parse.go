package colour

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColour is returned when a string is neither hex nor a known name.
var ErrUnknownColour = errors.New("unknown colour")

// ParseColour accepts a hex string (RRGGBB or AARRGGBB, '#' optional) or an
// SVG 1.1 colour keyword such as "teal" or "darkslateblue".
func ParseColour(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrUnknownColour)
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return fromKeyword(named), nil
	}

	c, err := FromHex(s)
	if err == nil {
		return c, nil
	}
	if strings.HasPrefix(s, "#") || isHexString(s) {
		return Color{}, err
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
}

// ColourNames returns the recognised colour keywords in alphabetical order.
func ColourNames() []string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromKeyword decodes a keyword's 8-bit channels the same way hex input is.
func fromKeyword(c color.RGBA) Color {
	return FromARGB(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
