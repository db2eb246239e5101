package colorspace

import (
	"fmt"
	"strings"
)

// Adaptation selects how XYZ values measured under the sRGB white (D65)
// are mapped to a different reference white before an illuminant-relative
// conversion.
type Adaptation int

const (
	// AdaptNone normalises by the selected white point only.
	AdaptNone Adaptation = iota
	// AdaptBradford applies the Bradford chromatic adaptation transform.
	AdaptBradford
)

var bradford = mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var bradfordInv = bradford.inverse()

// Valid reports whether a is a known adaptation method.
func (a Adaptation) Valid() bool {
	return a == AdaptNone || a == AdaptBradford
}

func (a Adaptation) String() string {
	switch a {
	case AdaptNone:
		return "none"
	case AdaptBradford:
		return "bradford"
	default:
		return fmt.Sprintf("Adaptation(%d)", int(a))
	}
}

// ParseAdaptation accepts "none" or "bradford".
func ParseAdaptation(s string) (Adaptation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AdaptNone, nil
	case "bradford":
		return AdaptBradford, nil
	default:
		return 0, fmt.Errorf("unknown chromatic adaptation %q", s)
	}
}

// Adapt maps c from the source white to the destination white.
// AdaptNone returns c unchanged.
func (a Adaptation) Adapt(c XYZ, src, dst XYZ) XYZ {
	if a != AdaptBradford || src == dst {
		return c
	}
	sr, sg, sb := bradford.apply(src.X, src.Y, src.Z)
	dr, dg, db := bradford.apply(dst.X, dst.Y, dst.Z)
	m := bradfordInv.mul(diag(dr/sr, dg/sg, db/sb)).mul(bradford)
	x, y, z := m.apply(c.X, c.Y, c.Z)
	return XYZ{X: x, Y: y, Z: z}
}
