package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/notation"
	"huectl/internal/tui/model"
	"huectl/pkg/logging"
)

// Options configures the interactive converter.
type Options struct {
	Config    notation.Config
	Source    *notation.Notation
	Notations []notation.Notation
	Selected  notation.Notation // row highlighted at start, if shown
	Initial   string
	Copy      CopyFunc
}

// NewProgram creates the Bubble Tea program for the converter.
func NewProgram(opts Options, logChannel <-chan logging.LogEntry) *tea.Program {
	return tea.NewProgram(newProgramModel(opts, logChannel), tea.WithAltScreen())
}

func newProgramModel(opts Options, logChannel <-chan logging.LogEntry) *AppModel {
	m := model.InitializeModel(opts.Config, opts.Source, opts.Notations, opts.Initial, logChannel)
	for i, n := range m.Notations {
		if n == opts.Selected {
			m.Selected = i
			break
		}
	}
	return NewAppModel(m, opts.Copy)
}
