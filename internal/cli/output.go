package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatPlain OutputFormat = "plain"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatPlain, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes results in one output format.
type Printer struct {
	out    io.Writer
	format OutputFormat
	color  bool
}

// NewPrinter creates a printer. Colors are only used for tables when
// color is true.
func NewPrinter(out io.Writer, format OutputFormat, color bool) *Printer {
	return &Printer{out: out, format: format, color: color}
}

// PrintResult writes a conversion result.
func (p *Printer) PrintResult(res Result) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(res)
	case OutputFormatYAML:
		return p.printYAML(res)
	case OutputFormatPlain:
		rows := make([][2]string, 0, len(res.Renderings))
		for _, r := range res.Renderings {
			rows = append(rows, [2]string{r.Notation, r.Value})
		}
		return p.printColumns(rows)
	case OutputFormatTable:
		t := p.newTable()
		t.AppendHeader(p.header("NOTATION", "VALUE"))
		for _, r := range res.Renderings {
			t.AppendRow(table.Row{p.paint(text.FgYellow, r.Notation), r.Value})
		}
		t.SetCaption("%s read as %s", res.Input, res.Source)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// NotationInfo describes one supported notation for listings.
type NotationInfo struct {
	Notation string `json:"notation" yaml:"notation"`
	Label    string `json:"label" yaml:"label"`
	Alpha    bool   `json:"alpha" yaml:"alpha"`
	Example  string `json:"example" yaml:"example"`
}

// PrintNotations writes the notation listing.
func (p *Printer) PrintNotations(infos []NotationInfo) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(infos)
	case OutputFormatYAML:
		return p.printYAML(infos)
	case OutputFormatPlain:
		rows := make([][2]string, 0, len(infos))
		for _, i := range infos {
			rows = append(rows, [2]string{i.Notation, i.Example})
		}
		return p.printColumns(rows)
	case OutputFormatTable:
		t := p.newTable()
		t.AppendHeader(p.header("NOTATION", "ACTION", "ALPHA", "EXAMPLE"))
		for _, i := range infos {
			alpha := p.paint(text.FgHiBlack, "-")
			if i.Alpha {
				alpha = p.paint(text.FgGreen, "yes")
			}
			t.AppendRow(table.Row{p.paint(text.FgYellow, i.Notation), i.Label, alpha, i.Example})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// PrintValue writes an arbitrary value as YAML or JSON; tables and plain
// output fall back to YAML.
func (p *Printer) PrintValue(v any) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(v)
	}
	return p.printYAML(v)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	if p.color {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}
	return t
}

func (p *Printer) header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, col := range cols {
		row[i] = p.paint(text.FgHiCyan, col)
	}
	return row
}

func (p *Printer) paint(c text.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// printColumns aligns two columns by display width.
func (p *Printer) printColumns(rows [][2]string) error {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(p.out, "%s  %s\n", runewidth.FillRight(r[0], width), r[1]); err != nil {
			return err
		}
	}
	return nil
}
