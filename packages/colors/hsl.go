package colors

import (
	"math"

	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
)

// HSLToRGB converts hue (degrees) and saturation/lightness (percent) to RGB
// channels rounded to integers. Hues outside [0, 360) select no sector, so
// every channel lands on the same level l - c/2.
func HSLToRGB(h, s, l float64) RGB {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case 0 <= h && h < 60:
		r, g, b = c, x, 0
	case 60 <= h && h < 120:
		r, g, b = x, c, 0
	case 120 <= h && h < 180:
		r, g, b = 0, c, x
	case 180 <= h && h < 240:
		r, g, b = 0, x, c
	case 240 <= h && h < 300:
		r, g, b = x, 0, c
	case 300 <= h && h < 360:
		r, g, b = c, 0, x
	}

	return RGB{
		R: arith.Round((r + m) * 255),
		G: arith.Round((g + m) * 255),
		B: arith.Round((b + m) * 255),
	}
}

// RGBToHSL converts RGB channels to HSL. The hue sector is chosen by the
// largest channel and rounded to whole degrees before negative hues wrap by
// 360; saturation and lightness are rounded to one decimal place. Gray
// inputs have hue and saturation 0.
func RGBToHSL(r, g, b float64) HSL {
	r /= 255
	g /= 255
	b /= 255

	cmin := math.Min(math.Min(r, g), b)
	cmax := math.Max(math.Max(r, g), b)
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h = arith.Round(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: h + 0, // folds -0 into 0
		S: arith.ToFixed(s*100, 1),
		L: arith.ToFixed(l*100, 1),
	}
}

// HexToHSL is RGBToHSL applied to HexToRGB(hex).
func HexToHSL(hex string) HSL {
	c := HexToRGB(hex)
	return RGBToHSL(c.R, c.G, c.B)
}

// HSLToHex is RGBToHex applied to HSLToRGB(h, s, l).
func HSLToHex(h, s, l float64) string {
	c := HSLToRGB(h, s, l)
	return RGBToHex(c.R, c.G, c.B)
}
