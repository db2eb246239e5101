// Package colorspace implements the colorimetric conversions used by the
// notation codecs.
//
// All functions are pure and operate on float64 coordinates. RGB inputs and
// outputs are gamma-encoded sRGB components in [0, 1]; results of the
// inverse transforms are not clamped, so out-of-gamut values are visible to
// the caller.
//
// CIE XYZ is expressed on the 0..100 scale, so the D65 white point of the
// sRGB primaries is approximately (95.047, 100, 108.883). CIELAB and Hunter
// Lab take an explicit white point, which is looked up from an Illuminant
// and an Observer with WhitePoint.
package colorspace
