package colors

import (
	"math"
	"math/rand/v2"
)

// RandomRGB returns three independent channels, each in [0, 254].
func RandomRGB() RGB {
	return RandomRGBWith(rand.Float64)
}

// RandomRGBWith is RandomRGB drawing from next.
func RandomRGBWith(next func() float64) RGB {
	return RGB{
		R: floor(next() * 255),
		G: floor(next() * 255),
		B: floor(next() * 255),
	}
}

// RandomHSL returns a hue in [0, 359] and saturation and lightness in [0, 99].
func RandomHSL() HSL {
	return RandomHSLWith(rand.Float64)
}

// RandomHSLWith is RandomHSL drawing from next.
func RandomHSLWith(next func() float64) HSL {
	return HSL{
		H: floor(next() * 360),
		S: floor(next() * 100),
		L: floor(next() * 100),
	}
}

func floor(x float64) float64 {
	return math.Floor(x)
}
