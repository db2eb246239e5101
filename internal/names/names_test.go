package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/color"
)

func TestSVGDictionary(t *testing.T) {
	d := SVG()
	entries := d.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "aliceblue", entries[0].Name)

	c, ok := d.LookupByText("cornflowerblue", Tolerance{})
	require.True(t, ok)
	r, g, b, a := c.RGBA8()
	assert.Equal(t, [4]uint8{100, 149, 237, 255}, [4]uint8{r, g, b, a})
}

func TestLookupByTextTolerance(t *testing.T) {
	d := SVG()
	tests := []struct {
		name  string
		input string
		tol   Tolerance
		found bool
	}{
		{"exact", "red", Tolerance{}, true},
		{"case strict", "Red", Tolerance{}, false},
		{"case tolerant", "RED", Tolerance{IgnoreCase: true}, true},
		{"whitespace strict", "light blue", Tolerance{}, false},
		{"whitespace tolerant", "Light Blue", Tolerance{IgnoreCase: true, IgnoreWhitespace: true}, true},
		{"punctuation tolerant", "light-blue", Tolerance{IgnorePunctuation: true}, true},
		{"partial strict", "cornflower", Tolerance{}, false},
		{"partial unique", "cornflower", Tolerance{AllowPartial: true}, true},
		{"partial ambiguous", "light", Tolerance{AllowPartial: true}, false},
		{"partial aliases", "dimgr", Tolerance{AllowPartial: true}, true},
		{"partial distinct colors", "aqu", Tolerance{AllowPartial: true}, false},
		{"unknown", "notacolorname", DefaultTolerance(), false},
		{"empty", "   ", DefaultTolerance(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := d.LookupByText(tt.input, tt.tol)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestLookupByColor(t *testing.T) {
	d := SVG()

	name, ok := d.LookupByColor(color.FromRGBA8(0, 255, 255, 255), Tolerance{})
	require.True(t, ok)
	assert.Equal(t, "aqua", name, "first alias in alphabetical order wins")

	name, ok = d.LookupByColor(color.FromRGBA8(255, 0, 0, 128), Tolerance{})
	require.True(t, ok)
	assert.Equal(t, "red", name)

	_, ok = d.LookupByColor(color.FromRGBA8(254, 1, 0, 255), Tolerance{})
	assert.False(t, ok)

	name, ok = d.LookupByColor(color.FromRGBA8(254, 1, 0, 255), Tolerance{AllowPartial: true})
	require.True(t, ok)
	assert.Equal(t, "red", name)

	_, ok = d.LookupByColor(color.FromRGBA8(1, 2, 200, 255), DefaultTolerance())
	assert.False(t, ok)
}

func TestNewDictionaryCopiesEntries(t *testing.T) {
	entries := []Entry{{Name: "brand", Color: color.FromRGBA8(1, 2, 3, 255)}}
	d := NewDictionary(entries)
	entries[0].Name = "changed"

	_, ok := d.LookupByText("brand", Tolerance{})
	assert.True(t, ok)
}
