// Package cli converts command-line input and renders the results for the
// terminal in table, plain, JSON or YAML form.
package cli

import (
	"fmt"
	"strings"

	"huectl/internal/color"
	"huectl/internal/notation"
)

// Rendering is one notation's text for a color.
type Rendering struct {
	Notation string `json:"notation" yaml:"notation"`
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
}

// Result is the outcome of converting one input.
type Result struct {
	Input      string      `json:"input" yaml:"input"`
	Source     string      `json:"source" yaml:"source"`
	Hex        string      `json:"hex" yaml:"hex"`
	Alpha      float64     `json:"alpha" yaml:"alpha"`
	Renderings []Rendering `json:"renderings" yaml:"renderings"`

	color color.Color
}

// Color returns the parsed color.
func (r Result) Color() color.Color { return r.color }

// ConvertOptions selects the source and target notations. A nil From
// detects the source notation; an empty To renders every notation.
type ConvertOptions struct {
	From *notation.Notation
	To   []notation.Notation
}

// Convert parses input and renders it in every requested notation.
func Convert(input string, opts ConvertOptions, cfg notation.Config) (Result, error) {
	var (
		src notation.Notation
		c   color.Color
		err error
	)
	if opts.From != nil {
		src = *opts.From
		c, err = src.Parse(input, cfg)
	} else {
		src, c, err = notation.ParseAny(input, cfg)
	}
	if err != nil {
		return Result{}, fmt.Errorf("cannot parse %q: %w", input, err)
	}
	return Render(input, src, c, opts.To, cfg), nil
}

// Render builds the result for an already parsed color.
func Render(input string, src notation.Notation, c color.Color, to []notation.Notation, cfg notation.Config) Result {
	if len(to) == 0 {
		to = notation.All()
	}
	hexCfg := cfg
	hexCfg.AlphaPosition = notation.AlphaNone

	res := Result{
		Input:  input,
		Source: src.String(),
		Hex:    notation.Hex.Format(c, hexCfg),
		Alpha:  c.A(),
		color:  c,
	}
	for _, n := range to {
		res.Renderings = append(res.Renderings, Rendering{
			Notation: n.String(),
			Label:    n.CopyLabel(),
			Value:    n.Format(c, cfg),
		})
	}
	return res
}

// sample is the color used for example renderings.
var sample = color.FromRGBA8(100, 149, 237, 255)

// Notations describes every notation with an example rendering under cfg.
func Notations(cfg notation.Config) []NotationInfo {
	infos := make([]NotationInfo, 0, len(notation.All()))
	for _, n := range notation.All() {
		infos = append(infos, NotationInfo{
			Notation: n.String(),
			Label:    n.CopyLabel(),
			Alpha:    n.SupportsAlpha(),
			Example:  n.Format(sample, cfg),
		})
	}
	return infos
}

// ParseTargets resolves notation labels. "all" or no labels select every
// notation.
func ParseTargets(labels []string) ([]notation.Notation, error) {
	var out []notation.Notation
	for _, l := range labels {
		if strings.EqualFold(strings.TrimSpace(l), "all") {
			return notation.All(), nil
		}
		n, err := notation.FromLabel(l)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return notation.All(), nil
	}
	return out, nil
}

// ParseSource resolves the source notation. "auto" or an empty label
// returns nil, meaning detection.
func ParseSource(label string) (*notation.Notation, error) {
	if label == "" || strings.EqualFold(strings.TrimSpace(label), "auto") {
		return nil, nil
	}
	n, err := notation.FromLabel(label)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
