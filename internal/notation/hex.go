package notation

import (
	"fmt"
	"strconv"
	"strings"

	"huectl/internal/color"
)

type hexCodec struct{}

func isHex(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// parse accepts an optional '#' followed by 3 or 6 digits, or 4 or 8 when
// an alpha position is configured. The alpha digits are read where cfg
// says they are.
func (hexCodec) parse(input string, cfg Config) (color.Color, string, error) {
	s := strings.TrimLeft(input, " \t\r\n")
	s = strings.TrimPrefix(s, "#")
	n := 0
	for n < len(s) && isHex(s[n]) {
		n++
	}
	digits, rest := s[:n], s[n:]

	switch n {
	case 3, 6:
	case 4, 8:
		if cfg.AlphaPosition == AlphaNone {
			return color.Color{}, input, color.Errorf("hex color %q has an alpha channel but no alpha position is set", digits)
		}
		if !cfg.AlphaPosition.Valid() {
			return color.Color{}, input, color.Errorf("unknown alpha position %d", int(cfg.AlphaPosition))
		}
	case 0:
		return color.Color{}, input, color.Errorf("expected a hex color, got %q", strings.TrimSpace(input))
	default:
		return color.Color{}, input, color.Errorf("hex color %q must have 3, 4, 6 or 8 digits", digits)
	}
	if n <= 4 {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.Color{}, input, color.Errorf("invalid hex color %q", digits)
	}
	var r, g, b, a uint8
	if len(digits) == 6 {
		r, g, b, a = uint8(v>>16), uint8(v>>8), uint8(v), 0xff
	} else if cfg.AlphaPosition == AlphaStart {
		a, r, g, b = uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
	} else {
		r, g, b, a = uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
	}
	return color.FromRGBA8(r, g, b, a), rest, nil
}

func (hexCodec) format(c color.Color, cfg Config) string {
	r, g, b, a := c.RGBA8()
	switch cfg.AlphaPosition {
	case AlphaEnd:
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
	case AlphaStart:
		return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
	default:
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
}
