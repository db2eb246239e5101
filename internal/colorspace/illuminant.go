package colorspace

import (
	"fmt"
	"strings"
)

// Illuminant is a CIE standard illuminant. The numeric values are stable
// and double as the settings index.
type Illuminant int

const (
	IlluminantA Illuminant = iota
	IlluminantB
	IlluminantC
	IlluminantD50
	IlluminantD55
	IlluminantD65
	IlluminantD75
	IlluminantE
	IlluminantF1
	IlluminantF2
	IlluminantF3
	IlluminantF4
	IlluminantF5
	IlluminantF6
	IlluminantF7
	IlluminantF8
	IlluminantF9
	IlluminantF10
	IlluminantF11
	IlluminantF12

	illuminantCount
)

// Observer selects the CIE standard observer color-matching functions.
type Observer int

const (
	// Observer2 is the CIE 1931 2° standard observer.
	Observer2 Observer = iota
	// Observer10 is the CIE 1964 10° supplementary standard observer.
	Observer10
)

var illuminantNames = [illuminantCount]string{
	"A", "B", "C", "D50", "D55", "D65", "D75", "E",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

// whitePoints holds the reference white of every illuminant for the
// 2° and 10° observers, Y normalised to 100.
var whitePoints = [illuminantCount][2]XYZ{
	IlluminantA:   {{109.850, 100, 35.585}, {111.144, 100, 35.200}},
	IlluminantB:   {{99.0927, 100, 85.313}, {99.178, 100, 84.3493}},
	IlluminantC:   {{98.074, 100, 118.232}, {97.285, 100, 116.145}},
	IlluminantD50: {{96.422, 100, 82.521}, {96.720, 100, 81.427}},
	IlluminantD55: {{95.682, 100, 92.149}, {95.799, 100, 90.926}},
	IlluminantD65: {{95.047, 100, 108.883}, {94.811, 100, 107.304}},
	IlluminantD75: {{94.972, 100, 122.638}, {94.416, 100, 120.641}},
	IlluminantE:   {{100, 100, 100}, {100, 100, 100}},
	IlluminantF1:  {{92.834, 100, 103.665}, {94.791, 100, 103.191}},
	IlluminantF2:  {{99.187, 100, 67.395}, {103.280, 100, 69.026}},
	IlluminantF3:  {{103.754, 100, 49.861}, {108.968, 100, 51.965}},
	IlluminantF4:  {{109.147, 100, 38.813}, {114.961, 100, 40.963}},
	IlluminantF5:  {{90.872, 100, 98.723}, {93.369, 100, 98.636}},
	IlluminantF6:  {{97.309, 100, 60.191}, {102.148, 100, 62.074}},
	IlluminantF7:  {{95.044, 100, 108.755}, {95.792, 100, 107.687}},
	IlluminantF8:  {{96.413, 100, 82.333}, {97.115, 100, 81.135}},
	IlluminantF9:  {{100.365, 100, 67.868}, {102.116, 100, 67.826}},
	IlluminantF10: {{96.174, 100, 81.712}, {99.001, 100, 83.134}},
	IlluminantF11: {{100.966, 100, 64.370}, {103.866, 100, 65.627}},
	IlluminantF12: {{108.046, 100, 39.228}, {111.428, 100, 40.353}},
}

// D65 is the sRGB reference white for the 2° observer.
var D65 = whitePoints[IlluminantD65][Observer2]

// Illuminants returns every supported illuminant in index order.
func Illuminants() []Illuminant {
	out := make([]Illuminant, illuminantCount)
	for i := range out {
		out[i] = Illuminant(i)
	}
	return out
}

// Valid reports whether i is a known illuminant.
func (i Illuminant) Valid() bool {
	return i >= 0 && i < illuminantCount
}

func (i Illuminant) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Illuminant(%d)", int(i))
	}
	return illuminantNames[i]
}

// IlluminantFromIndex maps a settings index to an Illuminant.
func IlluminantFromIndex(index int) (Illuminant, error) {
	i := Illuminant(index)
	if !i.Valid() {
		return 0, fmt.Errorf("unknown illuminant index %d", index)
	}
	return i, nil
}

// ParseIlluminant looks up an illuminant by name, e.g. "D65" or "f11".
func ParseIlluminant(name string) (Illuminant, error) {
	name = strings.TrimSpace(name)
	for i, n := range illuminantNames {
		if strings.EqualFold(n, name) {
			return Illuminant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown illuminant %q", name)
}

// Valid reports whether o is a known observer.
func (o Observer) Valid() bool {
	return o == Observer2 || o == Observer10
}

func (o Observer) String() string {
	switch o {
	case Observer2:
		return "2°"
	case Observer10:
		return "10°"
	default:
		return fmt.Sprintf("Observer(%d)", int(o))
	}
}

// Degrees returns the field of view of the observer, 2 or 10.
func (o Observer) Degrees() int {
	if o == Observer10 {
		return 10
	}
	return 2
}

// ObserverFromIndex maps a settings index (0 for 2°, 1 for 10°) to an Observer.
func ObserverFromIndex(index int) (Observer, error) {
	o := Observer(index)
	if !o.Valid() {
		return 0, fmt.Errorf("unknown observer index %d", index)
	}
	return o, nil
}

// ParseObserver accepts "2", "10", optionally followed by "deg" or "°".
func ParseObserver(s string) (Observer, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(strings.TrimSuffix(v, "°"), "deg")
	switch strings.TrimSpace(v) {
	case "2":
		return Observer2, nil
	case "10":
		return Observer10, nil
	default:
		return 0, fmt.Errorf("unknown observer %q", s)
	}
}

// WhitePoint returns the reference white of an illuminant seen by an
// observer. Unknown values are an error; no default is substituted.
func WhitePoint(i Illuminant, o Observer) (XYZ, error) {
	if !i.Valid() {
		return XYZ{}, fmt.Errorf("unknown illuminant %d", int(i))
	}
	if !o.Valid() {
		return XYZ{}, fmt.Errorf("unknown observer %d", int(o))
	}
	return whitePoints[i][o], nil
}
