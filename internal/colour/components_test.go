package colour

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// unit scales an 8-bit value the same way the hex and packed decoders do.
func unit(b uint8) float64 {
	return float64(b) * inv8Bit
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "below", v: -0.5, want: 0},
		{name: "lower bound", v: 0, want: 0},
		{name: "inside", v: 0.25, want: 0.25},
		{name: "upper bound", v: 1, want: 1},
		{name: "above", v: 7, want: 1},
		{name: "nan", v: math.NaN(), want: 0},
		{name: "positive infinity", v: math.Inf(1), want: 1},
		{name: "negative infinity", v: math.Inf(-1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.v, 0, 1); got != tt.want {
				t.Errorf("Clip(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestConstructorsClip(t *testing.T) {
	if got, want := NewRGB(-1, 0.5, 2), (RGB{R: 0, G: 0.5, B: 1}); got != want {
		t.Errorf("NewRGB() = %+v, want %+v", got, want)
	}
	if got, want := NewHSV(1.5, -0.1, 0.3), (HSV{H: 1, S: 0, V: 0.3}); got != want {
		t.Errorf("NewHSV() = %+v, want %+v", got, want)
	}
	if got, want := NewCMYK(0.1, 2, -3, 0.9), (CMYK{C: 0.1, M: 1, Y: 0, K: 0.9}); got != want {
		t.Errorf("NewCMYK() = %+v, want %+v", got, want)
	}
}

func TestComponentEquality(t *testing.T) {
	a := NewRGB(0.1, 0.2, 0.3)
	b := NewRGB(0.1, 0.2, 0.3)
	c := NewRGB(0.1, 0.2, math.Nextafter(0.3, 1))

	if a != b {
		t.Error("identical RGB values should be equal")
	}
	if a == c {
		t.Error("RGB values differing in the last bit should not be equal")
	}
}

func TestComponentStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "rgb", got: NewRGB(1, 0.5, 0).String(), want: "rgb(255, 128, 0)"},
		{name: "hsv", got: NewHSV(0.5, 1, 0.5).String(), want: "hsv(180.0°, 100.0%, 50.0%)"},
		{name: "cmyk", got: NewCMYK(0, 0.5, 1, 0.25).String(), want: "cmyk(0.0%, 50.0%, 100.0%, 25.0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestConstructorsClipNaN(t *testing.T) {
	nan := math.NaN()
	if got := NewRGB(nan, 0.5, 0.5); got != (RGB{R: 0, G: 0.5, B: 0.5}) {
		t.Errorf("NewRGB(NaN, .5, .5) = %+v", got)
	}
	if got := NewHSV(0.5, nan, 0.5); got != (HSV{H: 0.5, S: 0, V: 0.5}) {
		t.Errorf("NewHSV(.5, NaN, .5) = %+v", got)
	}
	if got := NewCMYK(0, 0, 0, nan); got != (CMYK{}) {
		t.Errorf("NewCMYK(0, 0, 0, NaN) = %+v", got)
	}
}
