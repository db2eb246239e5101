package color

import (
	"fmt"
	"math"
)

// Color is an sRGB color with alpha. Each component is in the range [0, 1].
// The zero value is transparent black; use RGB or New to build
// colors.
type Color struct {
	r, g, b, a float64
}

// New creates a color from red, green, blue and alpha components.
// Components outside [0, 1] are clamped; NaN becomes 0.
func New(r, g, b, a float64) Color {
	return Color{r: clamp01(r), g: clamp01(g), b: clamp01(b), a: clamp01(a)}
}

// RGB creates an opaque color from red, green and blue components.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// FromRGBA8 creates a color from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		r: float64(r) / 255,
		g: float64(g) / 255,
		b: float64(b) / 255,
		a: float64(a) / 255,
	}
}

// R returns the red component.
func (c Color) R() float64 { return c.r }

// G returns the green component.
func (c Color) G() float64 { return c.g }

// B returns the blue component.
func (c Color) B() float64 { return c.b }

// A returns the alpha component.
func (c Color) A() float64 { return c.a }

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool { return c.a >= 1 }

// WithAlpha returns a copy of c with the given alpha, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.a = clamp01(a)
	return c
}

// RGBA8 returns the components rounded to 8 bits.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.r), to8(c.g), to8(c.b), to8(c.a)
}

// RGBA implements the image/color.Color interface.
// The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.a * 0xffff))
	r = uint32(math.Round(c.r * c.a * 0xffff))
	g = uint32(math.Round(c.g * c.a * 0xffff))
	b = uint32(math.Round(c.b * c.a * 0xffff))
	return r, g, b, a
}

// ApproxEqual reports whether every component of c and o differs by at most tol.
func (c Color) ApproxEqual(o Color, tol float64) bool {
	return math.Abs(c.r-o.r) <= tol &&
		math.Abs(c.g-o.g) <= tol &&
		math.Abs(c.b-o.b) <= tol &&
		math.Abs(c.a-o.a) <= tol
}

// String returns a debugging representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("color(srgb %.4f %.4f %.4f / %.4f)", c.r, c.g, c.b, c.a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
