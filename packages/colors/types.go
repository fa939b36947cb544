package colors

import (
	"fmt"

	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
)

// RGB is a color as red, green and blue channels, nominally in [0, 255].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", arith.FormatNumber(c.R), arith.FormatNumber(c.G), arith.FormatNumber(c.B))
}

// HSL is a color as hue in degrees [0, 360) and saturation and lightness as
// percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", arith.FormatNumber(c.H), arith.FormatNumber(c.S), arith.FormatNumber(c.L))
}
