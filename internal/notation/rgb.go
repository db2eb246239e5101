package notation

import (
	"strconv"

	"huectl/internal/color"
	"huectl/internal/colorspace"
)

type rgbCodec struct{}

func (rgbCodec) parse(input string, cfg Config) (color.Color, string, error) {
	fn, rest, err := scanCall(input)
	if err != nil {
		return color.Color{}, input, err
	}
	args, alpha, err := fn.withAlpha("rgb", cfg.AlphaPosition)
	if err != nil {
		return color.Color{}, input, err
	}
	var ch [3]float64
	for i, what := range [3]string{"red", "green", "blue"} {
		if ch[i], err = args[i].channel(what); err != nil {
			return color.Color{}, input, err
		}
	}
	return color.New(ch[0], ch[1], ch[2], alpha), rest, nil
}

func (rgbCodec) format(c color.Color, cfg Config) string {
	r, g, b, _ := c.RGBA8()
	return withAlphaArgs("rgb", cfg.AlphaPosition, c.A(),
		strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
}

// cylinderCodec covers the hue-based sRGB models, which share a grammar:
// name(hue, x%, y%) with optional alpha.
type cylinderCodec struct {
	name    string
	x, y    string
	toRGB   func(h, x, y float64) (r, g, b float64)
	fromRGB func(r, g, b float64) (h, x, y float64)
}

var (
	hslCodec = cylinderCodec{
		name: "hsl", x: "saturation", y: "lightness",
		toRGB: colorspace.HSLToRGB, fromRGB: colorspace.RGBToHSL,
	}
	hsvCodec = cylinderCodec{
		name: "hsv", x: "saturation", y: "value",
		toRGB: colorspace.HSVToRGB, fromRGB: colorspace.RGBToHSV,
	}
	hwbCodec = cylinderCodec{
		name: "hwb", x: "whiteness", y: "blackness",
		toRGB: colorspace.HWBToRGB, fromRGB: colorspace.RGBToHWB,
	}
)

func (cc cylinderCodec) parse(input string, cfg Config) (color.Color, string, error) {
	fn, rest, err := scanCall(input)
	if err != nil {
		return color.Color{}, input, err
	}
	args, alpha, err := fn.withAlpha(cc.name, cfg.AlphaPosition)
	if err != nil {
		return color.Color{}, input, err
	}
	h, err := args[0].hue()
	if err != nil {
		return color.Color{}, input, err
	}
	x, err := args[1].percent(cc.x)
	if err != nil {
		return color.Color{}, input, err
	}
	y, err := args[2].percent(cc.y)
	if err != nil {
		return color.Color{}, input, err
	}
	r, g, b := cc.toRGB(h, x, y)
	return color.New(r, g, b, alpha), rest, nil
}

func (cc cylinderCodec) format(c color.Color, cfg Config) string {
	h, x, y := cc.fromRGB(c.R(), c.G(), c.B())
	return withAlphaArgs(cc.name, cfg.AlphaPosition, c.A(), num(h, precision), pct(x), pct(y))
}

type cmykCodec struct{}

func (cmykCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scanCall(input)
	if err != nil {
		return color.Color{}, input, err
	}
	if err := fn.expect(4, "cmyk"); err != nil {
		return color.Color{}, input, err
	}
	var v [4]float64
	for i, what := range [4]string{"cyan", "magenta", "yellow", "black"} {
		if v[i], err = fn.args[i].percent(what); err != nil {
			return color.Color{}, input, err
		}
	}
	r, g, b := colorspace.CMYKToRGB(v[0], v[1], v[2], v[3])
	return color.RGB(r, g, b), rest, nil
}

func (cmykCodec) format(c color.Color, _ Config) string {
	cy, m, y, k := colorspace.RGBToCMYK(c.R(), c.G(), c.B())
	return fnString("cmyk", pct(cy), pct(m), pct(y), pct(k))
}
