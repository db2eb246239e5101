package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"huectl/internal/notation"
	"huectl/pkg/logging"
)

// InitializeModel creates the converter state. An empty shown list
// displays every notation.
func InitializeModel(
	cfg notation.Config,
	source *notation.Notation,
	shown []notation.Notation,
	initial string,
	logChannel <-chan logging.LogEntry,
) *Model {
	ti := textinput.New()
	ti.Placeholder = "#6495ED, hsl(219, 79%, 66%), cornflowerblue ..."
	ti.Prompt = "› "
	ti.CharLimit = 128
	ti.Width = 50
	ti.Focus()

	if len(shown) == 0 {
		shown = notation.All()
	}

	m := &Model{
		Input:      ti,
		Help:       help.New(),
		Source:     source,
		Notations:  shown,
		Config:     cfg,
		LogChannel: logChannel,
	}
	if initial != "" {
		m.Input.SetValue(initial)
		m.Input.CursorEnd()
	}
	m.Refresh()
	return m
}
