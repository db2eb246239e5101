package notation

import (
	"strconv"
	"strings"
)

const (
	precision      = 2
	alphaPrecision = 3
)

// num formats v with at most prec decimals and no trailing zeros.
func num(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func pct(v float64) string {
	return num(v*100, precision) + "%"
}

// fnString renders name(a, b, c).
func fnString(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

// withAlphaArgs renders a three-channel function with alpha placed per pos.
func withAlphaArgs(base string, pos AlphaPosition, alpha float64, args ...string) string {
	a := num(alpha, alphaPrecision)
	switch pos {
	case AlphaEnd:
		return fnString(base+"a", append(args, a)...)
	case AlphaStart:
		return fnString("a"+base, append([]string{a}, args...)...)
	default:
		return fnString(base, args...)
	}
}
