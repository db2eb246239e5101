// Package names provides the name registry consulted by the Name notation.
//
// The notation core only depends on the Registry interface; Dictionary is
// the map-backed implementation used by the tool, seeded from the SVG 1.1
// keyword colors.
package names

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"huectl/internal/color"
)

// Tolerance controls how loosely a lookup matches.
type Tolerance struct {
	// IgnoreCase folds case before comparing names.
	IgnoreCase bool `yaml:"ignoreCase" json:"ignoreCase"`
	// IgnoreWhitespace drops spaces, tabs and newlines from names.
	IgnoreWhitespace bool `yaml:"ignoreWhitespace" json:"ignoreWhitespace"`
	// IgnorePunctuation drops punctuation such as '-', '_' and '\''.
	IgnorePunctuation bool `yaml:"ignorePunctuation" json:"ignorePunctuation"`
	// AllowPartial accepts a unique name prefix for text lookups and a
	// one-unit difference per 8-bit channel for color lookups.
	AllowPartial bool `yaml:"allowPartial" json:"allowPartial"`
}

// DefaultTolerance enables every tolerance flag.
func DefaultTolerance() Tolerance {
	return Tolerance{IgnoreCase: true, IgnoreWhitespace: true, IgnorePunctuation: true, AllowPartial: true}
}

// Registry is a bidirectional mapping between colors and names.
type Registry interface {
	LookupByText(text string, tol Tolerance) (color.Color, bool)
	LookupByColor(c color.Color, tol Tolerance) (string, bool)
}

// Entry is one named color.
type Entry struct {
	Name  string
	Color color.Color
}

// Dictionary is an in-memory Registry. It is safe for concurrent use once
// constructed.
type Dictionary struct {
	entries []Entry
}

// NewDictionary creates a Dictionary from entries. Order is preserved and
// decides which name wins when several share a color.
func NewDictionary(entries []Entry) *Dictionary {
	return &Dictionary{entries: append([]Entry(nil), entries...)}
}

// SVG returns a Dictionary of the 147 SVG 1.1 keyword colors in
// alphabetical order.
func SVG() *Dictionary {
	keys := append([]string(nil), colornames.Names...)
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, name := range keys {
		c := colornames.Map[name]
		entries = append(entries, Entry{Name: name, Color: color.FromRGBA8(c.R, c.G, c.B, c.A)})
	}
	return NewDictionary(entries)
}

// Entries returns a copy of the dictionary contents.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// LookupByText implements Registry.
func (d *Dictionary) LookupByText(text string, tol Tolerance) (color.Color, bool) {
	key := normalize(text, tol)
	if key == "" {
		return color.Color{}, false
	}
	for _, e := range d.entries {
		if normalize(e.Name, tol) == key {
			return e.Color, true
		}
	}
	if !tol.AllowPartial {
		return color.Color{}, false
	}

	var match *Entry
	for i := range d.entries {
		if !strings.HasPrefix(normalize(d.entries[i].Name, tol), key) {
			continue
		}
		if match != nil && match.Color != d.entries[i].Color {
			return color.Color{}, false
		}
		if match == nil {
			match = &d.entries[i]
		}
	}
	if match == nil {
		return color.Color{}, false
	}
	return match.Color, true
}

// LookupByColor implements Registry. Alpha is ignored.
func (d *Dictionary) LookupByColor(c color.Color, tol Tolerance) (string, bool) {
	r, g, b, _ := c.RGBA8()
	slack := 0
	if tol.AllowPartial {
		slack = 1
	}
	for _, e := range d.entries {
		er, eg, eb, _ := e.Color.RGBA8()
		if near(r, er, slack) && near(g, eg, slack) && near(b, eb, slack) {
			return e.Name, true
		}
	}
	return "", false
}

func near(a, b uint8, slack int) bool {
	d := int(a) - int(b)
	return d >= -slack && d <= slack
}

var fold = cases.Fold()

func normalize(s string, tol Tolerance) string {
	s = strings.TrimSpace(s)
	if tol.IgnoreCase {
		s = fold.String(s)
	}
	if !tol.IgnoreWhitespace && !tol.IgnorePunctuation {
		return s
	}
	return strings.Map(func(r rune) rune {
		if tol.IgnoreWhitespace && unicode.IsSpace(r) {
			return -1
		}
		if tol.IgnorePunctuation && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			return -1
		}
		return r
	}, s)
}
