package notation

import (
	"math"
	"strconv"
	"strings"

	"huectl/internal/color"
	"huectl/internal/colorspace"
)

// arg is one numeric argument of a functional notation such as the
// "50%" in hsl(0, 50%, 50%).
type arg struct {
	value float64
	unit  string
	text  string
}

// call is a parsed functional notation: name(arg, arg, ...).
type call struct {
	name  string
	args  []arg
	slash int // index of the argument preceded by '/', or -1
}

var knownUnits = map[string]bool{"": true, "%": true, "deg": true, "°": true, "rad": true, "grad": true, "turn": true}

// scanCall reads a functional notation from the start of s. The function
// name is lower-cased. Arguments may be separated by commas or whitespace;
// a single '/' may precede the last argument.
func scanCall(s string) (call, string, error) {
	s = strings.TrimLeft(s, " \t\r\n")
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 {
		return call{}, s, color.Errorf("expected a color function such as rgb(...), got %q", s)
	}
	fn := call{name: strings.ToLower(s[:i]), slash: -1}
	s = strings.TrimLeft(s[i:], " \t")
	if !strings.HasPrefix(s, "(") {
		return call{}, s, color.Errorf("expected '(' after %q", fn.name)
	}
	s = s[1:]

	needArg := false
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			return call{}, s, color.Errorf("missing closing parenthesis in %s(...)", fn.name)
		}
		switch s[0] {
		case ')':
			if needArg {
				return call{}, s, color.Errorf("missing value after separator in %s(...)", fn.name)
			}
			return fn, s[1:], nil
		case ',':
			if len(fn.args) == 0 || needArg {
				return call{}, s, color.Errorf("empty value in %s(...)", fn.name)
			}
			needArg = true
			s = s[1:]
			continue
		case '/':
			if len(fn.args) == 0 || needArg || fn.slash >= 0 {
				return call{}, s, color.Errorf("unexpected '/' in %s(...)", fn.name)
			}
			fn.slash = len(fn.args)
			needArg = true
			s = s[1:]
			continue
		}

		j := 0
		for j < len(s) && !strings.ContainsRune(" \t\r\n,/)", rune(s[j])) {
			j++
		}
		a, err := scanArg(s[:j])
		if err != nil {
			return call{}, s, err
		}
		fn.args = append(fn.args, a)
		needArg = false
		s = s[j:]
	}
}

func scanArg(tok string) (arg, error) {
	n := numberPrefix(tok)
	if n == 0 {
		return arg{}, color.Errorf("expected a number, got %q", tok)
	}
	v, err := strconv.ParseFloat(tok[:n], 64)
	if err != nil || math.IsInf(v, 0) {
		return arg{}, color.Errorf("invalid number %q", tok[:n])
	}
	unit := strings.ToLower(tok[n:])
	if !knownUnits[unit] {
		return arg{}, color.Errorf("unrecognized unit %q in %q", tok[n:], tok)
	}
	return arg{value: v, unit: unit, text: tok}, nil
}

// numberPrefix returns the length of the decimal number at the start of s.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// expect checks the function name against the accepted spellings and the
// argument count. A '/' separator is rejected.
func (fn call) expect(n int, names ...string) error {
	if !fn.named(names...) {
		return color.Errorf("expected %s(...), got %s(...)", names[0], fn.name)
	}
	if len(fn.args) != n {
		return color.Errorf("%s expects %d values, got %d", names[0], n, len(fn.args))
	}
	if fn.slash >= 0 {
		return color.Errorf("unexpected '/' in %s(...)", fn.name)
	}
	return nil
}

func (fn call) named(names ...string) bool {
	for _, n := range names {
		if fn.name == n {
			return true
		}
	}
	return false
}

// withAlpha validates name and arity of an alpha-capable function and
// splits off the alpha value according to pos. Three arguments are always
// accepted, also under the alpha spelling of the configured position
// (rgba(1, 2, 3) with AlphaEnd); a fourth (alpha) is only read in the
// configured position.
func (fn call) withAlpha(base string, pos AlphaPosition) ([]arg, float64, error) {
	if !pos.Valid() {
		return nil, 0, color.Errorf("unknown alpha position %d", int(pos))
	}
	switch len(fn.args) {
	case 3:
		names := []string{base}
		switch pos {
		case AlphaEnd:
			names = append(names, base+"a")
		case AlphaStart:
			names = append(names, "a"+base)
		}
		if err := fn.expect(3, names...); err != nil {
			return nil, 0, err
		}
		return fn.args, 1, nil
	case 4:
		var vals []arg
		var alphaArg arg
		switch pos {
		case AlphaNone:
			return nil, 0, color.Errorf("%s with an alpha value requires an alpha position", base)
		case AlphaEnd:
			if !fn.named(base, base+"a") {
				return nil, 0, color.Errorf("expected %sa(...), got %s(...)", base, fn.name)
			}
			if fn.slash >= 0 && fn.slash != 3 {
				return nil, 0, color.Errorf("unexpected '/' in %s(...)", fn.name)
			}
			vals, alphaArg = fn.args[:3], fn.args[3]
		case AlphaStart:
			if !fn.named(base, "a"+base) {
				return nil, 0, color.Errorf("expected a%s(...), got %s(...)", base, fn.name)
			}
			if fn.slash >= 0 {
				return nil, 0, color.Errorf("unexpected '/' in %s(...)", fn.name)
			}
			vals, alphaArg = fn.args[1:], fn.args[0]
		}
		a, err := alphaArg.alpha()
		if err != nil {
			return nil, 0, err
		}
		return vals, a, nil
	default:
		if pos == AlphaNone {
			return nil, 0, color.Errorf("%s expects 3 values, got %d", base, len(fn.args))
		}
		return nil, 0, color.Errorf("%s expects 3 or 4 values, got %d", base, len(fn.args))
	}
}

// percent reads a 0..100 quantity, with or without '%', as a fraction.
// Values outside the range are rejected rather than clamped.
func (a arg) percent(what string) (float64, error) {
	if a.unit != "" && a.unit != "%" {
		return 0, color.Errorf("%s %q must be a percentage", what, a.text)
	}
	if a.value < 0 || a.value > 100 {
		return 0, color.Errorf("%s %s is out of range [0, 100]", what, a.text)
	}
	return a.value / 100, nil
}

// hue reads an angle in degrees (default), radians, gradians or turns and
// wraps it into [0, 360).
func (a arg) hue() (float64, error) {
	deg := a.value
	switch a.unit {
	case "", "deg", "°":
	case "rad":
		deg = a.value * 180 / math.Pi
	case "grad":
		deg = a.value * 0.9
	case "turn":
		deg = a.value * 360
	default:
		return 0, color.Errorf("hue %q must be an angle", a.text)
	}
	return colorspace.NormalizeHue(deg), nil
}

// channel reads an 8-bit style channel: 0..255 or 0..100%.
func (a arg) channel(what string) (float64, error) {
	switch a.unit {
	case "%":
		return a.percent(what)
	case "":
		if a.value < 0 || a.value > 255 {
			return 0, color.Errorf("%s %s is out of range [0, 255]", what, a.text)
		}
		return a.value / 255, nil
	default:
		return 0, color.Errorf("%s %q must be a number or percentage", what, a.text)
	}
}

// alpha reads an opacity: 0..1 or 0..100%.
func (a arg) alpha() (float64, error) {
	switch a.unit {
	case "%":
		return a.percent("alpha")
	case "":
		if a.value < 0 || a.value > 1 {
			return 0, color.Errorf("alpha %s is out of range [0, 1]", a.text)
		}
		return a.value, nil
	default:
		return 0, color.Errorf("alpha %q must be a number or percentage", a.text)
	}
}

// number reads a unit-less value.
func (a arg) number(what string) (float64, error) {
	if a.unit != "" {
		return 0, color.Errorf("%s %q must be a plain number", what, a.text)
	}
	return a.value, nil
}

// nonNegative reads a unit-less value that must not be below zero.
func (a arg) nonNegative(what string) (float64, error) {
	v, err := a.number(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, color.Errorf("%s %s must not be negative", what, a.text)
	}
	return v, nil
}

// scaled reads a plain number, or a percentage of ref (100% == ref).
func (a arg) scaled(what string, ref float64) (float64, error) {
	if a.unit == "%" {
		return a.value / 100 * ref, nil
	}
	return a.number(what)
}

// lightness reads a CIE lightness in [0, 100], with or without '%'.
func (a arg) lightness() (float64, error) {
	v, err := a.percent("lightness")
	return v * 100, err
}
