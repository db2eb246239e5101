package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// The cylindrical sRGB models below return hue in degrees [0, 360) and the
// remaining components in [0, 1].

// RGBToHSL converts sRGB to hue, saturation and lightness.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	h, s, l = colorful.Color{R: r, G: g, B: b}.Hsl()
	return NormalizeHue(h), s, l
}

// HSLToRGB converts hue, saturation and lightness to sRGB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := colorful.Hsl(NormalizeHue(h), s, l)
	return c.R, c.G, c.B
}

// RGBToHSV converts sRGB to hue, saturation and value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	h, s, v = colorful.Color{R: r, G: g, B: b}.Hsv()
	return NormalizeHue(h), s, v
}

// HSVToRGB converts hue, saturation and value to sRGB.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := colorful.Hsv(NormalizeHue(h), s, v)
	return c.R, c.G, c.B
}

// RGBToHWB converts sRGB to hue, whiteness and blackness.
func RGBToHWB(r, g, b float64) (h, w, bl float64) {
	h, _, _ = RGBToHSV(r, g, b)
	w = math.Min(r, math.Min(g, b))
	bl = 1 - math.Max(r, math.Max(g, b))
	return h, w, bl
}

// HWBToRGB converts hue, whiteness and blackness to sRGB. When whiteness
// and blackness sum to more than one they are scaled to sum to one.
func HWBToRGB(h, w, bl float64) (r, g, b float64) {
	if sum := w + bl; sum >= 1 {
		gray := w / sum
		return gray, gray, gray
	}
	v := 1 - bl
	return HSVToRGB(h, 1-w/v, v)
}

// RGBToCMYK converts sRGB to naive device CMYK.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	k = 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB converts naive device CMYK to sRGB.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}
