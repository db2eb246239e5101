package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a CIE 1976 L*a*b* coordinate.
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical form of Lab. H is in degrees [0, 360).
type LCh struct {
	L, C, H float64
}

// whiteRef scales a 0..100 white point to the unit scale go-colorful uses.
func whiteRef(white XYZ) [3]float64 {
	return [3]float64{white.X / 100, white.Y / 100, white.Z / 100}
}

// XYZToLab converts XYZ to CIELAB relative to the given white point.
func XYZToLab(c XYZ, white XYZ) Lab {
	l, a, b := colorful.XyzToLabWhiteRef(c.X/100, c.Y/100, c.Z/100, whiteRef(white))
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// LabToXYZ converts CIELAB relative to the given white point back to XYZ.
func LabToXYZ(c Lab, white XYZ) XYZ {
	x, y, z := colorful.LabToXyzWhiteRef(c.L/100, c.A/100, c.B/100, whiteRef(white))
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// LabToLCh converts Lab to its cylindrical form.
func LabToLCh(c Lab) LCh {
	return LCh{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: hueFromAtan(c.B, c.A),
	}
}

// LChToLab converts LCh back to Lab.
func LChToLab(c LCh) Lab {
	sin, cos := math.Sincos(c.H * math.Pi / 180)
	return Lab{L: c.L, A: c.C * cos, B: c.C * sin}
}

// NormalizeHue wraps a hue angle in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// hueFromAtan returns atan2(y, x) in degrees within [0, 360).
// Chroma so small that the angle is noise yields 0.
func hueFromAtan(y, x float64) float64 {
	if math.Abs(y) < 1e-12 && math.Abs(x) < 1e-12 {
		return 0
	}
	return NormalizeHue(math.Atan2(y, x) * 180 / math.Pi)
}
