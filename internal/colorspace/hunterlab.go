package colorspace

import "math"

// HunterLab is a Hunter 1948 L, a, b coordinate.
type HunterLab struct {
	L, A, B float64
}

func hunterK(white XYZ) (ka, kb float64) {
	ka = 175.0 / 198.04 * (white.X + white.Y)
	kb = 70.0 / 218.11 * (white.Y + white.Z)
	return ka, kb
}

// XYZToHunterLab converts XYZ to Hunter Lab relative to the given white point.
func XYZToHunterLab(c XYZ, white XYZ) HunterLab {
	ka, kb := hunterK(white)
	yr := c.Y / white.Y
	if yr <= 0 {
		return HunterLab{}
	}
	s := math.Sqrt(yr)
	return HunterLab{
		L: 100 * s,
		A: ka * (c.X/white.X - yr) / s,
		B: kb * (yr - c.Z/white.Z) / s,
	}
}

// HunterLabToXYZ converts Hunter Lab relative to the given white point to XYZ.
func HunterLabToXYZ(c HunterLab, white XYZ) XYZ {
	if c.L <= 0 {
		return XYZ{}
	}
	ka, kb := hunterK(white)
	s := c.L / 100
	yr := s * s
	return XYZ{
		X: (c.A/ka*s + yr) * white.X,
		Y: yr * white.Y,
		Z: (yr - c.B/kb*s) * white.Z,
	}
}
