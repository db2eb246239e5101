// Package color holds the canonical color value shared by every notation.
//
// A Color stores gamma-encoded sRGB channels and an alpha channel, each in
// the closed range [0, 1]. Every notation converts to and from this value;
// conversions never mutate a Color, they produce new ones.
//
// Parsing failures anywhere in huectl are reported as *Error, the single
// error kind of the color core:
//
//	c, err := notation.RGB.Parse("rgb(300, 0, 0)", cfg)
//	var cerr *color.Error
//	if errors.As(err, &cerr) {
//	    fmt.Println(cerr.Message)
//	}
package color
