package notation

import (
	"strings"

	"huectl/internal/color"
)

type nameCodec struct{}

// parse consumes the whole input as a color name.
func (nameCodec) parse(input string, cfg Config) (color.Color, string, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return color.Color{}, input, color.Errorf("expected a color name")
	}
	if cfg.Names == nil {
		return color.Color{}, input, color.Errorf("no color names are available")
	}
	c, ok := cfg.Names.LookupByText(text, cfg.NameTolerance)
	if !ok {
		return color.Color{}, input, color.Errorf("no name found for %q", text)
	}
	return c, "", nil
}

func (nameCodec) format(c color.Color, cfg Config) string {
	if cfg.Names == nil {
		return NotNamed
	}
	if name, ok := cfg.Names.LookupByColor(c, cfg.NameTolerance); ok {
		return name
	}
	return NotNamed
}
