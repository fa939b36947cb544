package colors

import (
	"math/rand/v2"
	"strings"

	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
)

// RGBToHex packs the channels into a 24-bit value and prints it as #rrggbb.
// Red and green are wrapped to 32-bit integers before shifting; blue is added
// as is, so fractional or out-of-range channels yield malformed strings.
func RGBToHex(r, g, b float64) string {
	packed := float64(1<<24) + float64(arith.ToInt32(r)<<16) + float64(arith.ToInt32(g)<<8) + b
	return "#" + dropFirst(arith.FormatHex(packed))
}

// HexToRGB decodes a #rrggbb string; the leading '#' is optional. Channels
// come from the longest valid hex prefix, and unparseable input decodes to
// black.
func HexToRGB(hex string) RGB {
	v := arith.ToInt32(arith.ParseHexPrefix(strings.TrimPrefix(hex, "#")))
	return RGB{
		R: float64((v >> 16) & 0xFF),
		G: float64((v >> 8) & 0xFF),
		B: float64(v & 0xFF),
	}
}

// RandomHex returns a random 24-bit value in base 16 without '#' and without
// zero padding.
func RandomHex() string {
	return RandomHexWith(rand.Float64)
}

// RandomHexWith is RandomHex drawing from next.
func RandomHexWith(next func() float64) string {
	return arith.FormatHex(floor(next() * 0xFFFFFF))
}

func dropFirst(s string) string {
	if s == "" {
		return s
	}
	return s[1:]
}
