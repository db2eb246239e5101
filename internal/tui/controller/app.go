// Package controller wires the converter model to Bubble Tea: it handles
// keys, clipboard copies and log entries, and delegates drawing to view.
package controller

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/tui/model"
	"huectl/internal/tui/view"
	"huectl/pkg/logging"
)

const statusTimeout = 3 * time.Second

// CopyFunc writes text to the clipboard.
type CopyFunc func(text string) error

// AppModel is the tea.Model of the converter.
type AppModel struct {
	model *model.Model
	keys  KeyMap
	copy  CopyFunc
}

// NewAppModel wraps m. A nil copy uses the system clipboard.
func NewAppModel(m *model.Model, copyFn CopyFunc) *AppModel {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &AppModel{model: m, keys: DefaultKeyMap(), copy: copyFn}
}

// Model exposes the wrapped state.
func (a *AppModel) Model() *model.Model { return a.model }

// Init starts the cursor blink and the log listener.
func (a *AppModel) Init() tea.Cmd {
	return tea.Batch(a.model.Input.Focus(), a.model.ListenForLogs())
}

// Update handles one message.
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m := a.model
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Help.Width = msg.Width
		m.Input.Width = max(msg.Width-4, 10)
		return a, nil

	case model.ClearStatusBarMsg:
		m.ClearStatus()
		return a, nil

	case model.NewLogEntryMsg:
		return a, tea.Batch(a.handleLogEntry(msg.Entry), m.ListenForLogs())

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return a, cmd
}

func (a *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.model
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		m.MoveSelection(-1)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		m.MoveSelection(1)
		return a, nil
	case key.Matches(msg, a.keys.Tab):
		return a, a.cycleSource(1)
	case key.Matches(msg, a.keys.ShiftTab):
		return a, a.cycleSource(-1)
	case key.Matches(msg, a.keys.Help):
		m.ShowHelp = !m.ShowHelp
		return a, nil
	case key.Matches(msg, a.keys.Copy):
		return a, a.copySelected()
	}

	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() != before {
		m.Refresh()
	}
	return a, cmd
}

func (a *AppModel) cycleSource(step int) tea.Cmd {
	m := a.model
	m.CycleSource(step)
	return m.SetStatusMessage("Reading input as "+m.SourceLabel(), model.StatusBarInfo, statusTimeout)
}

func (a *AppModel) copySelected() tea.Cmd {
	m := a.model
	r, ok := m.SelectedRendering()
	if !ok {
		return m.SetStatusMessage("Nothing to copy", model.StatusBarWarning, statusTimeout)
	}
	if err := a.copy(r.Value); err != nil {
		logging.Error("TUI", err, "Failed to copy %s", r.Notation)
		return m.SetStatusMessage(r.Label+" failed", model.StatusBarError, statusTimeout)
	}
	return m.SetStatusMessage(fmt.Sprintf("%s: %s", r.Label, r.Value), model.StatusBarSuccess, statusTimeout)
}

// handleLogEntry surfaces warnings and errors in the status bar.
func (a *AppModel) handleLogEntry(entry logging.LogEntry) tea.Cmd {
	var msgType model.MessageType
	switch entry.Level {
	case logging.LevelWarn:
		msgType = model.StatusBarWarning
	case logging.LevelError:
		msgType = model.StatusBarError
	default:
		return nil
	}
	text := entry.Message
	if entry.Err != nil {
		text += ": " + entry.Err.Error()
	}
	return a.model.SetStatusMessage(text, msgType, statusTimeout)
}

// View renders the screen.
func (a *AppModel) View() string {
	return view.Render(a.model, a.keys)
}
