package builtin

import "github.com/abdul-hamid-achik/toolbox/packages/colors"

func (r *Registry) registerColors() {
	r.Register("colors.rgbToHex", "rgbToHex(r, g, b)", "Pack RGB channels into #rrggbb", triple("colors.rgbToHex", "r", "g", "b", func(r, g, b float64) any {
		return colors.RGBToHex(r, g, b)
	}))
	r.Register("colors.hexToRgb", "hexToRgb(hex)", "Decode #rrggbb into RGB channels", hexFunc("colors.hexToRgb", func(hex string) any {
		return colors.HexToRGB(hex)
	}))
	r.Register("colors.randomHex", "randomHex()", "Random 24-bit value in base 16", func(_ []any) (any, error) {
		return colors.RandomHexWith(r.random), nil
	})
	r.Register("colors.randomRgb", "randomRgb()", "Random RGB, channels in [0, 254]", func(_ []any) (any, error) {
		return colors.RandomRGBWith(r.random), nil
	})
	r.Register("colors.hslToRgb", "hslToRgb(h, s, l)", "Convert HSL to RGB", triple("colors.hslToRgb", "h", "s", "l", func(h, s, l float64) any {
		return colors.HSLToRGB(h, s, l)
	}))
	r.Register("colors.rgbToHsl", "rgbToHsl(r, g, b)", "Convert RGB to HSL", triple("colors.rgbToHsl", "r", "g", "b", func(r, g, b float64) any {
		return colors.RGBToHSL(r, g, b)
	}))
	r.Register("colors.randomHsl", "randomHsl()", "Random HSL, hue in [0, 359]", func(_ []any) (any, error) {
		return colors.RandomHSLWith(r.random), nil
	})
	r.Register("colors.hexToHsl", "hexToHsl(hex)", "Decode #rrggbb into HSL", hexFunc("colors.hexToHsl", func(hex string) any {
		return colors.HexToHSL(hex)
	}))
	r.Register("colors.hslToHex", "hslToHex(h, s, l)", "Convert HSL to #rrggbb", triple("colors.hslToHex", "h", "s", "l", func(h, s, l float64) any {
		return colors.HSLToHex(h, s, l)
	}))
}

func triple(name, p0, p1, p2 string, fn func(x, y, z float64) any) Func {
	return func(args []any) (any, error) {
		a := newArgReader(name, args)
		x, err := a.number(0, p0)
		if err != nil {
			return nil, err
		}
		y, err := a.number(1, p1)
		if err != nil {
			return nil, err
		}
		z, err := a.number(2, p2)
		if err != nil {
			return nil, err
		}
		return fn(x, y, z), nil
	}
}

func hexFunc(name string, fn func(hex string) any) Func {
	return func(args []any) (any, error) {
		hex, err := newArgReader(name, args).str(0, "hex")
		if err != nil {
			return nil, err
		}
		return fn(hex), nil
	}
}
