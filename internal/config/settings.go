package config

import (
	"fmt"

	"huectl/internal/colorspace"
	"huectl/internal/names"
	"huectl/internal/notation"
)

// NotationConfig resolves the color settings into the value passed to
// every parse and format call. The configuration should be validated
// first; unset fields fall back to the notation defaults.
func (c HuectlConfig) NotationConfig(registry names.Registry) (notation.Config, error) {
	cfg := notation.DefaultConfig()
	if registry != nil {
		cfg.Names = registry
	}
	s := c.Color

	var err error
	if s.Illuminant != "" {
		if cfg.Illuminant, err = colorspace.ParseIlluminant(s.Illuminant); err != nil {
			return notation.Config{}, err
		}
	}
	if s.Observer != "" {
		if cfg.Observer, err = colorspace.ParseObserver(s.Observer); err != nil {
			return notation.Config{}, err
		}
	}
	if s.AlphaPosition != "" {
		if cfg.AlphaPosition, err = notation.ParseAlphaPosition(s.AlphaPosition); err != nil {
			return notation.Config{}, err
		}
	}
	if s.Adaptation != "" {
		if cfg.Adaptation, err = colorspace.ParseAdaptation(s.Adaptation); err != nil {
			return notation.Config{}, err
		}
	}
	if s.NameTolerance != nil {
		cfg.NameTolerance = *s.NameTolerance
	}
	return cfg, nil
}

// DefaultNotation returns the notation whose row is highlighted when the
// interactive converter starts. An empty setting yields notation.Default.
func (c HuectlConfig) DefaultNotation() (notation.Notation, error) {
	if c.UI.DefaultNotation == "" {
		return notation.Default, nil
	}
	return notation.FromLabel(c.UI.DefaultNotation)
}

// Notations returns the notations to display, in configured order, without
// duplicates. An empty list yields every notation.
func (c HuectlConfig) Notations() ([]notation.Notation, error) {
	if len(c.UI.Notations) == 0 {
		return notation.All(), nil
	}
	seen := make(map[notation.Notation]bool, len(c.UI.Notations))
	out := make([]notation.Notation, 0, len(c.UI.Notations))
	for _, label := range c.UI.Notations {
		n, err := notation.FromLabel(label)
		if err != nil {
			return nil, fmt.Errorf("ui.notations: %w", err)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}
