package config

import (
	"huectl/internal/colorspace"
	"huectl/internal/names"
	"huectl/internal/notation"
)

// GetDefaultConfig returns the built-in configuration layer.
func GetDefaultConfig() HuectlConfig {
	tol := names.DefaultTolerance()

	var shown []string
	for _, n := range notation.All() {
		shown = append(shown, n.String())
	}

	return HuectlConfig{
		Color: ColorSettings{
			Illuminant:    colorspace.IlluminantD65.String(),
			Observer:      "2",
			AlphaPosition: notation.AlphaNone.String(),
			Adaptation:    colorspace.AdaptNone.String(),
			NameTolerance: &tol,
		},
		UI: UISettings{
			DefaultNotation: notation.Default.String(),
			Notations:       shown,
			Output:          "table",
		},
	}
}
