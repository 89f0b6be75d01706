package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// inv8Bit scales an 8-bit channel into [0, 1].
const inv8Bit = 1.0 / 255.0

const (
	rgbHexDigits  = 6
	argbHexDigits = 8
)

// ErrInvalidHex is returned when a hex string is too short or not hexadecimal.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGBA pairs an RGB value with its alpha channel.
type RGBA struct {
	RGB   RGB     `json:"rgb"`
	Alpha float64 `json:"alpha"`
}

// UnpackARGB extracts the colour and alpha from a packed 0xAARRGGBB word.
func UnpackARGB(argb uint32) RGBA {
	return RGBA{
		RGB: NewRGB(
			float64((argb>>16)&0xff)*inv8Bit,
			float64((argb>>8)&0xff)*inv8Bit,
			float64(argb&0xff)*inv8Bit,
		),
		Alpha: clipUnit(float64(argb>>24) * inv8Bit),
	}
}

// Pack encodes the value as a 0xAARRGGBB word, rounding each channel to 8 bits.
func (c RGBA) Pack() uint32 {
	return uint32(toByte(c.Alpha))<<24 |
		uint32(toByte(c.RGB.R))<<16 |
		uint32(toByte(c.RGB.G))<<8 |
		uint32(toByte(c.RGB.B))
}

// DecodeRGB parses an RRGGBB hex string. A leading '#' is ignored and longer
// strings are truncated to their trailing six digits.
func DecodeRGB(s string) (RGB, error) {
	word, err := decodeHex(s, rgbHexDigits)
	if err != nil {
		return RGB{}, err
	}
	return UnpackARGB(word).RGB, nil
}

// DecodeRGBA parses an AARRGGBB hex string. A leading '#' is ignored and longer
// strings are truncated to their trailing eight digits.
func DecodeRGBA(s string) (RGBA, error) {
	word, err := decodeHex(s, argbHexDigits)
	if err != nil {
		return RGBA{}, err
	}
	return UnpackARGB(word), nil
}

// decodeHex reads the trailing digits hex characters of s as a 32-bit word.
func decodeHex(s string, digits int) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) < digits {
		return 0, fmt.Errorf("%w: %q needs at least %d digits", ErrInvalidHex, s, digits)
	}
	s = s[len(s)-digits:]

	word, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}
	return uint32(word), nil
}

// toByte rounds a unit interval value onto the 0-255 scale.
func toByte(v float64) uint8 {
	return uint8(math.Round(clipUnit(v) * 255))
}

// hexRGB formats an RGB value as "#rrggbb".
func hexRGB(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}
