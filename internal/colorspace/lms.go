package colorspace

// LMS is a cone response coordinate (long, medium, short wavelengths).
type LMS struct {
	L, M, S float64
}

// Hunt-Pointer-Estevez transform, applied to XYZ on the 0..1 scale.
var (
	xyzToLMS = mat3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}
	lmsToXYZ = xyzToLMS.inverse()
)

// XYZToLMS converts XYZ to Hunt-Pointer-Estevez cone responses.
func XYZToLMS(c XYZ) LMS {
	l, m, s := xyzToLMS.apply(c.X/100, c.Y/100, c.Z/100)
	return LMS{L: l, M: m, S: s}
}

// LMSToXYZ converts cone responses back to XYZ.
func LMSToXYZ(c LMS) XYZ {
	x, y, z := lmsToXYZ.apply(c.L, c.M, c.S)
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}
