package model

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/cli"
	"huectl/internal/notation"
)

// Refresh re-parses the input under the current source notation.
func (m *Model) Refresh() {
	text := strings.TrimSpace(m.Input.Value())
	if text == "" {
		m.Result, m.Err = cli.Result{}, nil
		return
	}
	res, err := cli.Convert(text, cli.ConvertOptions{From: m.Source, To: m.Notations}, m.Config)
	if err != nil {
		m.Result, m.Err = cli.Result{}, err
		return
	}
	m.Result, m.Err = res, nil
}

// HasResult reports whether there is a color to show.
func (m *Model) HasResult() bool {
	return m.Err == nil && len(m.Result.Renderings) > 0
}

// SourceLabel names the notation input is read as.
func (m *Model) SourceLabel() string {
	if m.Source == nil {
		return "auto"
	}
	return m.Source.String()
}

// CycleSource moves to the next input notation: auto, then every
// notation in order, then back to auto.
func (m *Model) CycleSource(step int) {
	all := notation.All()
	// Position 0 is auto; notation i sits at i+1.
	pos := 0
	if m.Source != nil {
		pos = int(*m.Source) + 1
	}
	pos = ((pos+step)%(len(all)+1) + len(all) + 1) % (len(all) + 1)
	if pos == 0 {
		m.Source = nil
	} else {
		n := all[pos-1]
		m.Source = &n
	}
	m.Refresh()
}

// MoveSelection moves the highlighted row, wrapping at either end.
func (m *Model) MoveSelection(step int) {
	n := len(m.Notations)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+step)%n + n) % n
}

// SelectedRendering returns the highlighted row, if there is a result.
func (m *Model) SelectedRendering() (cli.Rendering, bool) {
	if !m.HasResult() || m.Selected >= len(m.Result.Renderings) {
		return cli.Rendering{}, false
	}
	return m.Result.Renderings[m.Selected], true
}

// SetStatusMessage shows message and clears it after clearAfter.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatus removes the status message.
func (m *Model) ClearStatus() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
	m.StatusBarClearCancel = nil
}

// ListenForLogs waits for the next log entry.
func (m *Model) ListenForLogs() tea.Cmd {
	if m.LogChannel == nil {
		return nil
	}
	ch := m.LogChannel
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
