package colorspace

import "math"

// XYZ is a CIE 1931 tristimulus value on the 0..100 scale.
type XYZ struct {
	X, Y, Z float64
}

// sRGB primaries with the D65 reference white (IEC 61966-2-1).
var (
	linearRGBToXYZ = mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToLinearRGB = mat3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// SRGBToLinear removes the sRGB transfer function from one component.
func SRGBToLinear(v float64) float64 {
	if v < 0 {
		return -SRGBToLinear(-v)
	}
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to one linear component.
func LinearToSRGB(v float64) float64 {
	if v < 0 {
		return -LinearToSRGB(-v)
	}
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// RGBToXYZ converts gamma-encoded sRGB to XYZ.
func RGBToXYZ(r, g, b float64) XYZ {
	x, y, z := linearRGBToXYZ.apply(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// XYZToRGB converts XYZ to gamma-encoded sRGB. The result is not clamped.
func XYZToRGB(c XYZ) (r, g, b float64) {
	lr, lg, lb := xyzToLinearRGB.apply(c.X/100, c.Y/100, c.Z/100)
	return LinearToSRGB(lr), LinearToSRGB(lg), LinearToSRGB(lb)
}
