package controller

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/notation"
	"huectl/internal/tui/model"
	"huectl/pkg/logging"
)

func newTestApp(t *testing.T, copied *[]string, copyErr error) *AppModel {
	t.Helper()
	m := model.InitializeModel(notation.DefaultConfig(), nil,
		[]notation.Notation{notation.Hex, notation.RGB, notation.Name}, "", nil)
	return NewAppModel(m, func(s string) error {
		if copyErr != nil {
			return copyErr
		}
		*copied = append(*copied, s)
		return nil
	})
}

func send(a *AppModel, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func TestTypingConverts(t *testing.T) {
	var copied []string
	a := newTestApp(t, &copied, nil)

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#00f")})
	m := a.Model()
	require.True(t, m.HasResult())
	assert.Equal(t, "#0000FF", m.Result.Renderings[0].Value)
	assert.Equal(t, "blue", m.Result.Renderings[2].Value)

	send(a, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, m.HasResult())
}

func TestCopySelected(t *testing.T) {
	var copied []string
	a := newTestApp(t, &copied, nil)
	m := a.Model()

	cmd := send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.StatusBarMessage)

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("red")})
	send(a, tea.KeyMsg{Type: tea.KeyDown})
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"rgb(255, 0, 0)"}, copied)
	assert.Equal(t, "Copy RGB: rgb(255, 0, 0)", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)

	send(a, tea.KeyMsg{Type: tea.KeyUp})
	send(a, tea.KeyMsg{Type: tea.KeyUp})
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"rgb(255, 0, 0)", "red"}, copied)
}

func TestCopyFailure(t *testing.T) {
	logging.InitForCLI(logging.LevelError, &discard{})
	a := newTestApp(t, nil, errors.New("no clipboard"))
	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#fff")})
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Copy Hex Code failed", a.Model().StatusBarMessage)
	assert.Equal(t, model.StatusBarError, a.Model().StatusBarMessageType)
}

func TestTabCyclesSource(t *testing.T) {
	a := newTestApp(t, nil, nil)
	cmd := send(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotNil(t, cmd, "the status message clears itself")
	require.NotNil(t, a.Model().Source)
	assert.Equal(t, notation.Hex, *a.Model().Source)
	assert.Equal(t, "Reading input as hex", a.Model().StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, a.Model().StatusBarMessageType)

	send(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Nil(t, a.Model().Source)
	assert.Equal(t, "Reading input as auto", a.Model().StatusBarMessage)
}

func TestQuit(t *testing.T) {
	a := newTestApp(t, nil, nil)
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		cmd := send(a, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestLogEntriesReachStatusBar(t *testing.T) {
	a := newTestApp(t, nil, nil)
	send(a, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelInfo, Message: "quiet"}})
	assert.Empty(t, a.Model().StatusBarMessage)

	send(a, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelError, Message: "config reload failed", Err: errors.New("bad yaml")}})
	assert.Equal(t, "config reload failed: bad yaml", a.Model().StatusBarMessage)

	send(a, model.ClearStatusBarMsg{})
	assert.Empty(t, a.Model().StatusBarMessage)
}

func TestWindowSize(t *testing.T) {
	a := newTestApp(t, nil, nil)
	send(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, a.Model().Width)
	assert.Contains(t, a.View(), "huectl")
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestNewProgramSelectsDefault(t *testing.T) {
	opts := Options{
		Config:    notation.DefaultConfig(),
		Notations: []notation.Notation{notation.Hex, notation.RGB, notation.HSL},
		Selected:  notation.HSL,
		Initial:   "#fff",
	}
	require.NotNil(t, NewProgram(opts, nil))

	m := newProgramModel(opts, nil).Model()
	assert.Equal(t, 2, m.Selected)
	r, ok := m.SelectedRendering()
	require.True(t, ok)
	assert.Equal(t, "Copy HSL", r.Label)

	opts.Selected = notation.Oklch
	assert.Equal(t, 0, newProgramModel(opts, nil).Model().Selected, "a hidden default leaves the first row selected")
}
