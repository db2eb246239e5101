package color

import (
	"errors"
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       [4]float64
	}{
		{"in range", 0.25, 0.5, 0.75, 1, [4]float64{0.25, 0.5, 0.75, 1}},
		{"above one", 1.5, 2, 1, 3, [4]float64{1, 1, 1, 1}},
		{"negative", -0.1, -5, 0, -1, [4]float64{0, 0, 0, 0}},
		{"nan", math.NaN(), 0.5, 0.5, 0.5, [4]float64{0, 0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.r, tt.g, tt.b, tt.a)
			assert.Equal(t, tt.want, [4]float64{c.R(), c.G(), c.B(), c.A()})
		})
	}
}

func TestRGBA8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 17, 127, 128, 200, 254, 255} {
		c := FromRGBA8(v, 255-v, v/2, 255)
		r, g, b, a := c.RGBA8()
		assert.Equal(t, [4]uint8{v, 255 - v, v / 2, 255}, [4]uint8{r, g, b, a})
	}
}

func TestWithAlphaDoesNotMutate(t *testing.T) {
	c := RGB(1, 0, 0)
	d := c.WithAlpha(0.5)

	assert.True(t, c.Opaque())
	assert.False(t, d.Opaque())
	assert.InDelta(t, 0.5, d.A(), 1e-12)
	assert.Equal(t, c.R(), d.R())
}

func TestImplementsImageColor(t *testing.T) {
	var c stdcolor.Color = FromRGBA8(255, 0, 0, 255)

	nrgba := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	assert.Equal(t, stdcolor.NRGBA{R: 255, A: 255}, nrgba)

	half := New(1, 1, 1, 0.5)
	r, _, _, a := half.RGBA()
	assert.Equal(t, a, r, "premultiplied white keeps r == a")
}

func TestApproxEqual(t *testing.T) {
	a := RGB(0.5, 0.5, 0.5)
	assert.True(t, a.ApproxEqual(RGB(0.501, 0.499, 0.5), 0.002))
	assert.False(t, a.ApproxEqual(RGB(0.51, 0.5, 0.5), 0.002))
	assert.False(t, a.ApproxEqual(a.WithAlpha(0.9), 0.002))
}

func TestErrorIsDetectable(t *testing.T) {
	err := Errorf("bad channel %d", 3)

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "bad channel 3", cerr.Message)
	assert.EqualError(t, err, "bad channel 3")
}
