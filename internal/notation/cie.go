package notation

import (
	"huectl/internal/color"
	"huectl/internal/colorspace"
)

// scan3 reads a three-argument function under one of names.
func scan3(input string, names ...string) (call, string, error) {
	fn, rest, err := scanCall(input)
	if err != nil {
		return call{}, input, err
	}
	if err := fn.expect(3, names...); err != nil {
		return call{}, input, err
	}
	return fn, rest, nil
}

func fromXYZ(xyz colorspace.XYZ) color.Color {
	r, g, b := colorspace.XYZToRGB(xyz)
	return color.RGB(r, g, b)
}

func toXYZ(c color.Color) colorspace.XYZ {
	return colorspace.RGBToXYZ(c.R(), c.G(), c.B())
}

// mustWhite resolves the configured white point for formatting.
func mustWhite(cfg Config) colorspace.XYZ {
	white, err := cfg.whitePoint()
	if err != nil {
		panic("notation: " + err.Error())
	}
	return white
}

type xyzCodec struct{}

func (xyzCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "xyz")
	if err != nil {
		return color.Color{}, input, err
	}
	var v [3]float64
	for i, what := range [3]string{"x", "y", "z"} {
		if v[i], err = fn.args[i].nonNegative(what); err != nil {
			return color.Color{}, input, err
		}
	}
	return fromXYZ(colorspace.XYZ{X: v[0], Y: v[1], Z: v[2]}), rest, nil
}

func (xyzCodec) format(c color.Color, _ Config) string {
	xyz := toXYZ(c)
	return fnString("xyz", num(xyz.X, 3), num(xyz.Y, 3), num(xyz.Z, 3))
}

// labArgs reads L (0..100) followed by two unbounded components.
func labArgs(fn call) (l, a, b float64, err error) {
	if l, err = fn.args[0].lightness(); err != nil {
		return 0, 0, 0, err
	}
	if a, err = fn.args[1].number("a"); err != nil {
		return 0, 0, 0, err
	}
	if b, err = fn.args[2].number("b"); err != nil {
		return 0, 0, 0, err
	}
	return l, a, b, nil
}

// labCodec is CIELAB relative to the configured white point.
type labCodec struct{}

func (labCodec) parse(input string, cfg Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "cielab", "lab")
	if err != nil {
		return color.Color{}, input, err
	}
	white, err := cfg.whitePoint()
	if err != nil {
		return color.Color{}, input, color.Errorf("%s", err)
	}
	l, a, b, err := labArgs(fn)
	if err != nil {
		return color.Color{}, input, err
	}
	xyz := colorspace.LabToXYZ(colorspace.Lab{L: l, A: a, B: b}, white)
	return fromXYZ(cfg.Adaptation.Adapt(xyz, white, colorspace.D65)), rest, nil
}

func (labCodec) format(c color.Color, cfg Config) string {
	white := mustWhite(cfg)
	lab := colorspace.XYZToLab(cfg.Adaptation.Adapt(toXYZ(c), colorspace.D65, white), white)
	return fnString("cielab", num(lab.L, precision), num(lab.A, precision), num(lab.B, precision))
}

// lchCodec is CIE LCh(ab) under D65 and the 2° observer.
type lchCodec struct{}

func (lchCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "lch", "hcl", "cielch")
	if err != nil {
		return color.Color{}, input, err
	}
	l, err := fn.args[0].lightness()
	if err != nil {
		return color.Color{}, input, err
	}
	ch, err := fn.args[1].nonNegative("chroma")
	if err != nil {
		return color.Color{}, input, err
	}
	h, err := fn.args[2].hue()
	if err != nil {
		return color.Color{}, input, err
	}
	lab := colorspace.LChToLab(colorspace.LCh{L: l, C: ch, H: h})
	return fromXYZ(colorspace.LabToXYZ(lab, colorspace.D65)), rest, nil
}

func (lchCodec) format(c color.Color, _ Config) string {
	lch := colorspace.LabToLCh(colorspace.XYZToLab(toXYZ(c), colorspace.D65))
	return fnString("lch", num(lch.L, precision), num(lch.C, precision), num(lch.H, precision))
}

// lmsPrecision keeps 8-bit colors stable through a round trip; LMS is
// on the 0..1 scale.
const lmsPrecision = 6

type lmsCodec struct{}

func (lmsCodec) parse(input string, _ Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "lms")
	if err != nil {
		return color.Color{}, input, err
	}
	var v [3]float64
	for i, what := range [3]string{"l", "m", "s"} {
		if v[i], err = fn.args[i].number(what); err != nil {
			return color.Color{}, input, err
		}
	}
	return fromXYZ(colorspace.LMSToXYZ(colorspace.LMS{L: v[0], M: v[1], S: v[2]})), rest, nil
}

func (lmsCodec) format(c color.Color, _ Config) string {
	lms := colorspace.XYZToLMS(toXYZ(c))
	return fnString("lms", num(lms.L, lmsPrecision), num(lms.M, lmsPrecision), num(lms.S, lmsPrecision))
}

// hunterLabCodec is Hunter Lab relative to the configured white point.
type hunterLabCodec struct{}

func (hunterLabCodec) parse(input string, cfg Config) (color.Color, string, error) {
	fn, rest, err := scan3(input, "hunterlab")
	if err != nil {
		return color.Color{}, input, err
	}
	white, err := cfg.whitePoint()
	if err != nil {
		return color.Color{}, input, color.Errorf("%s", err)
	}
	l, a, b, err := labArgs(fn)
	if err != nil {
		return color.Color{}, input, err
	}
	xyz := colorspace.HunterLabToXYZ(colorspace.HunterLab{L: l, A: a, B: b}, white)
	return fromXYZ(cfg.Adaptation.Adapt(xyz, white, colorspace.D65)), rest, nil
}

func (hunterLabCodec) format(c color.Color, cfg Config) string {
	white := mustWhite(cfg)
	h := colorspace.XYZToHunterLab(cfg.Adaptation.Adapt(toXYZ(c), colorspace.D65, white), white)
	return fnString("hunterlab", num(h.L, precision), num(h.A, precision), num(h.B, precision))
}
