package config

import (
	"huectl/internal/names"
)

// HuectlConfig is the top-level configuration structure for huectl.
type HuectlConfig struct {
	Color ColorSettings `yaml:"color" json:"color"`
	UI    UISettings    `yaml:"ui" json:"ui"`
}

// ColorSettings selects the colorimetric parameters of every conversion.
// Empty fields are unset and fall through to the layer below.
type ColorSettings struct {
	Illuminant    string `yaml:"illuminant,omitempty" json:"illuminant,omitempty" validate:"omitempty,illuminant"`        // e.g. "D65", "F2"
	Observer      string `yaml:"observer,omitempty" json:"observer,omitempty" validate:"omitempty,observer"`              // "2" or "10"
	AlphaPosition string `yaml:"alphaPosition,omitempty" json:"alphaPosition,omitempty" validate:"omitempty,alphaposition"` // "none", "end" or "start"
	Adaptation    string `yaml:"adaptation,omitempty" json:"adaptation,omitempty" validate:"omitempty,adaptation"`        // "none" or "bradford"

	// NameTolerance is replaced as a whole when set in a layer.
	NameTolerance *names.Tolerance `yaml:"nameTolerance,omitempty" json:"nameTolerance,omitempty"`
}

// UISettings controls which notations are shown, which row is selected
// first and how results are printed.
type UISettings struct {
	DefaultNotation string   `yaml:"defaultNotation,omitempty" json:"defaultNotation,omitempty" validate:"omitempty,notation"`
	Notations       []string `yaml:"notations,omitempty" json:"notations,omitempty" validate:"omitempty,dive,notation"`
	Output          string   `yaml:"output,omitempty" json:"output,omitempty" validate:"omitempty,oneof=table plain json yaml"`
}
