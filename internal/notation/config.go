package notation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"huectl/internal/colorspace"
	"huectl/internal/names"
)

// AlphaPosition says where the alpha channel is written and read in the
// notations that can carry it (Hex, RGB, HSL, HSV, HWB). The numeric values
// double as the settings index.
type AlphaPosition int

const (
	// AlphaNone neither writes nor accepts an alpha channel.
	AlphaNone AlphaPosition = iota
	// AlphaEnd places alpha after the color channels: #RRGGBBAA, rgba(r, g, b, a).
	AlphaEnd
	// AlphaStart places alpha before the color channels: #AARRGGBB, argb(a, r, g, b).
	AlphaStart
)

// Valid reports whether p is a known alpha position.
func (p AlphaPosition) Valid() bool {
	return p >= AlphaNone && p <= AlphaStart
}

func (p AlphaPosition) String() string {
	switch p {
	case AlphaNone:
		return "none"
	case AlphaEnd:
		return "end"
	case AlphaStart:
		return "start"
	default:
		return fmt.Sprintf("AlphaPosition(%d)", int(p))
	}
}

// AlphaPositionFromIndex maps a settings index to an AlphaPosition.
func AlphaPositionFromIndex(index int) (AlphaPosition, error) {
	p := AlphaPosition(index)
	if !p.Valid() {
		return 0, fmt.Errorf("unknown alpha position index %d", index)
	}
	return p, nil
}

// ParseAlphaPosition accepts none, end (trailing) or start (leading).
func ParseAlphaPosition(s string) (AlphaPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AlphaNone, nil
	case "end", "trailing":
		return AlphaEnd, nil
	case "start", "leading":
		return AlphaStart, nil
	default:
		return 0, fmt.Errorf("unknown alpha position %q", s)
	}
}

// Config carries the settings a parse or format call depends on. It is
// passed explicitly on every call; the core never caches it.
type Config struct {
	// Illuminant and Observer select the white point for CIELAB and Hunter Lab.
	Illuminant colorspace.Illuminant
	Observer   colorspace.Observer
	// Adaptation maps sRGB's D65 white to the selected white point.
	Adaptation colorspace.Adaptation
	// AlphaPosition applies to Hex, RGB, HSL, HSV and HWB.
	AlphaPosition AlphaPosition
	// Names is consulted by the Name notation only.
	Names         names.Registry
	NameTolerance names.Tolerance
}

var svgNames = sync.OnceValue(names.SVG)

// DefaultConfig returns D65, the 2° observer, no alpha, no adaptation and
// the SVG color names with every tolerance flag enabled.
func DefaultConfig() Config {
	return Config{
		Illuminant:    colorspace.IlluminantD65,
		Observer:      colorspace.Observer2,
		Adaptation:    colorspace.AdaptNone,
		AlphaPosition: AlphaNone,
		Names:         svgNames(),
		NameTolerance: names.DefaultTolerance(),
	}
}

// Validate reports every unknown enumeration value in c.
func (c Config) Validate() error {
	var errs []error
	if !c.Illuminant.Valid() {
		errs = append(errs, fmt.Errorf("unknown illuminant %d", int(c.Illuminant)))
	}
	if !c.Observer.Valid() {
		errs = append(errs, fmt.Errorf("unknown observer %d", int(c.Observer)))
	}
	if !c.Adaptation.Valid() {
		errs = append(errs, fmt.Errorf("unknown chromatic adaptation %d", int(c.Adaptation)))
	}
	if !c.AlphaPosition.Valid() {
		errs = append(errs, fmt.Errorf("unknown alpha position %d", int(c.AlphaPosition)))
	}
	return errors.Join(errs...)
}

func (c Config) whitePoint() (colorspace.XYZ, error) {
	if !c.Adaptation.Valid() {
		return colorspace.XYZ{}, fmt.Errorf("unknown chromatic adaptation %d", int(c.Adaptation))
	}
	return colorspace.WhitePoint(c.Illuminant, c.Observer)
}
