package colorspace

import "math"

// Oklab is a coordinate in Björn Ottosson's Oklab space. L is in [0, 1].
type Oklab struct {
	L, A, B float64
}

// Oklch is the cylindrical form of Oklab. H is in degrees [0, 360).
type Oklch struct {
	L, C, H float64
}

var (
	linearRGBToOkLMS = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	okLMSToOklab = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabToOkLMS = mat3{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	okLMSToLinearRGB = mat3{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// RGBToOklab converts gamma-encoded sRGB to Oklab.
func RGBToOklab(r, g, b float64) Oklab {
	l, m, s := linearRGBToOkLMS.apply(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	L, A, B := okLMSToOklab.apply(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return Oklab{L: L, A: A, B: B}
}

// OklabToRGB converts Oklab to gamma-encoded sRGB. The result is not clamped.
func OklabToRGB(c Oklab) (r, g, b float64) {
	lp, mp, sp := oklabToOkLMS.apply(c.L, c.A, c.B)
	lr, lg, lb := okLMSToLinearRGB.apply(lp*lp*lp, mp*mp*mp, sp*sp*sp)
	return LinearToSRGB(lr), LinearToSRGB(lg), LinearToSRGB(lb)
}

// OklabToOklch converts Oklab to its cylindrical form.
func OklabToOklch(c Oklab) Oklch {
	return Oklch{L: c.L, C: math.Hypot(c.A, c.B), H: hueFromAtan(c.B, c.A)}
}

// OklchToOklab converts Oklch back to Oklab.
func OklchToOklab(c Oklch) Oklab {
	sin, cos := math.Sincos(c.H * math.Pi / 180)
	return Oklab{L: c.L, A: c.C * cos, B: c.C * sin}
}
