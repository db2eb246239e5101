// Package notation converts between text and the canonical color value.
//
// Each Notation is a closed variant with its own grammar, conversion math
// and output format. Parse and Format are the only dispatch points; every
// call takes a Config so the caller owns settings freshness:
//
//	cfg := notation.DefaultConfig()
//	c, err := notation.HSL.Parse("hsl(210, 100%, 50%)", cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(notation.Lab.Format(c, cfg)) // cielab(...)
package notation

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"huectl/internal/color"
)

// Notation is a textual color representation.
type Notation int

const (
	Hex Notation = iota
	RGB
	HSL
	HSV
	CMYK
	XYZ
	Lab
	HWB
	HCL
	Name
	LMS
	HunterLab
	Oklab
	Oklch

	notationCount
)

// Default is the notation used when none is configured.
const Default = Hex

// NotNamed is returned by Name.Format when the registry has no match.
// Callers may localise it.
const NotNamed = "Not named"

// codec is the behaviour bundle of one notation. parse returns the input
// left over after the color so notations can be embedded in larger
// grammars.
type codec interface {
	parse(input string, cfg Config) (color.Color, string, error)
	format(c color.Color, cfg Config) string
}

type info struct {
	token   string
	label   string
	aliases []string
	codec   codec
}

var notations = [notationCount]info{
	Hex:       {token: "hex", label: "Copy Hex Code", codec: hexCodec{}},
	RGB:       {token: "rgb", label: "Copy RGB", codec: rgbCodec{}},
	HSL:       {token: "hsl", label: "Copy HSL", codec: hslCodec},
	HSV:       {token: "hsv", label: "Copy HSV", codec: hsvCodec},
	CMYK:      {token: "cmyk", label: "Copy CMYK", codec: cmykCodec{}},
	XYZ:       {token: "xyz", label: "Copy Xyz", codec: xyzCodec{}},
	Lab:       {token: "cielab", label: "Copy CIELAB", aliases: []string{"lab"}, codec: labCodec{}},
	HWB:       {token: "hwb", label: "Copy HWB", codec: hwbCodec},
	HCL:       {token: "hcl", label: "Copy CIELCh / HCL", aliases: []string{"lch", "cielch"}, codec: lchCodec{}},
	Name:      {token: "name", label: "Copy Name", codec: nameCodec{}},
	LMS:       {token: "lms", label: "Copy LMS", codec: lmsCodec{}},
	HunterLab: {token: "hunterlab", label: "Copy Hunter Lab", codec: hunterLabCodec{}},
	Oklab:     {token: "oklab", label: "Copy Oklab", codec: oklabCodec{}},
	Oklch:     {token: "oklch", label: "Copy Oklch", codec: oklchCodec{}},
}

// All returns every notation in declaration order.
func All() []Notation {
	out := make([]Notation, notationCount)
	for i := range out {
		out[i] = Notation(i)
	}
	return out
}

// Valid reports whether n is one of the declared notations.
func (n Notation) Valid() bool {
	return n >= 0 && n < notationCount
}

// String returns the short token of n, e.g. "rgb" or "cielab".
func (n Notation) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Notation(%d)", int(n))
	}
	return notations[n].token
}

// CopyLabel returns the action label shown next to n, e.g. "Copy Hex Code".
func (n Notation) CopyLabel() string {
	if !n.Valid() {
		return ""
	}
	return notations[n].label
}

// SupportsAlpha reports whether n can carry an alpha channel.
func (n Notation) SupportsAlpha() bool {
	switch n {
	case Hex, RGB, HSL, HSV, HWB:
		return true
	default:
		return false
	}
}

var fold = cases.Fold()

// FromLabel looks up a notation by its token, ignoring case and
// surrounding whitespace.
func FromLabel(s string) (Notation, error) {
	key := fold.String(strings.TrimSpace(s))
	for i, inf := range notations {
		if key == inf.token {
			return Notation(i), nil
		}
		for _, alias := range inf.aliases {
			if key == alias {
				return Notation(i), nil
			}
		}
	}
	return 0, color.Errorf("failed to get color notation from %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("invalid notation %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Notation) UnmarshalText(text []byte) error {
	v, err := FromLabel(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Parse converts input into a color. The whole input, apart from
// surrounding whitespace, must be consumed. Errors are always *color.Error.
func (n Notation) Parse(input string, cfg Config) (color.Color, error) {
	c, rest, err := n.ParsePrefix(input, cfg)
	if err != nil {
		return color.Color{}, err
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		return color.Color{}, color.Errorf("unexpected trailing input %q", rest)
	}
	return c, nil
}

// ParsePrefix parses a color from the start of input and returns the
// unconsumed remainder.
func (n Notation) ParsePrefix(input string, cfg Config) (color.Color, string, error) {
	if !n.Valid() {
		return color.Color{}, input, color.Errorf("unknown notation %d", int(n))
	}
	return notations[n].codec.parse(input, cfg)
}

// Format renders c in notation n. It does not fail: Name falls back to
// NotNamed. Format panics if cfg holds an unknown illuminant, observer or
// adaptation and n is CIELAB or Hunter Lab; check with Config.Validate.
func (n Notation) Format(c color.Color, cfg Config) string {
	if !n.Valid() {
		return ""
	}
	return notations[n].codec.format(c, cfg)
}

// ParseAny tries every notation in declaration order, Name last, and
// returns the first that accepts input.
func ParseAny(input string, cfg Config) (Notation, color.Color, error) {
	for _, n := range All() {
		if n == Name {
			continue
		}
		if c, err := n.Parse(input, cfg); err == nil {
			return n, c, nil
		}
	}
	if c, err := Name.Parse(input, cfg); err == nil {
		return Name, c, nil
	}
	return 0, color.Color{}, color.Errorf("unrecognized color %q", strings.TrimSpace(input))
}
