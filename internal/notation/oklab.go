package notation

import (
	"strings"

	"huectl/internal/color"
	"huectl/internal/colorspace"
)

// okReference is the chroma that 100% stands for in oklab() and oklch().
const okReference = 0.4

func okLightness(a arg) (float64, error) {
	if a.unit == "%" {
		return a.percent("lightness")
	}
	v, err := a.number("lightness")
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, color.Errorf("lightness %s is out of range [0, 1]", a.text)
	}
	return v, nil
}

func okString(name string, args ...string) string {
	return name + "(" + strings.Join(args, " ") + ")"
}

type oklabCodec struct{}

func (oklabCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "oklab")
	if err != nil {
		return color.Color{}, input, err
	}
	l, err := okLightness(fn.args[0])
	if err != nil {
		return color.Color{}, input, err
	}
	a, err := fn.args[1].scaled("a", okReference)
	if err != nil {
		return color.Color{}, input, err
	}
	b, err := fn.args[2].scaled("b", okReference)
	if err != nil {
		return color.Color{}, input, err
	}
	r, g, bl := colorspace.OklabToRGB(colorspace.Oklab{L: l, A: a, B: b})
	return color.RGB(r, g, bl), rest, nil
}

func (oklabCodec) format(c color.Color, _ Config) string {
	ok := colorspace.RGBToOklab(c.R(), c.G(), c.B())
	return okString("oklab", pct(ok.L), num(ok.A, 4), num(ok.B, 4))
}

type oklchCodec struct{}

func (oklchCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "oklch")
	if err != nil {
		return color.Color{}, input, err
	}
	l, err := okLightness(fn.args[0])
	if err != nil {
		return color.Color{}, input, err
	}
	ch, err := fn.args[1].scaled("chroma", okReference)
	if err != nil {
		return color.Color{}, input, err
	}
	if ch < 0 {
		return color.Color{}, input, color.Errorf("chroma %s must not be negative", fn.args[1].text)
	}
	h, err := fn.args[2].hue()
	if err != nil {
		return color.Color{}, input, err
	}
	r, g, b := colorspace.OklabToRGB(colorspace.OklchToOklab(colorspace.Oklch{L: l, C: ch, H: h}))
	return color.RGB(r, g, b), rest, nil
}

func (oklchCodec) format(c color.Color, _ Config) string {
	lch := colorspace.OklabToOklch(colorspace.RGBToOklab(c.R(), c.G(), c.B()))
	return okString("oklch", pct(lch.L), num(lch.C, 4), num(lch.H, precision))
}
