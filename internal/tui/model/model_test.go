package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/notation"
	"huectl/pkg/logging"
)

func TestInitializeModel(t *testing.T) {
	m := InitializeModel(notation.DefaultConfig(), nil, nil, "#f00", nil)
	require.True(t, m.HasResult())
	assert.Equal(t, "hex", m.Result.Source)
	assert.Len(t, m.Result.Renderings, len(notation.All()))
	assert.Equal(t, "auto", m.SourceLabel())

	empty := InitializeModel(notation.DefaultConfig(), nil, nil, "", nil)
	assert.False(t, empty.HasResult())
	assert.NoError(t, empty.Err)
}

func TestRefreshReportsErrors(t *testing.T) {
	hsl := notation.HSL
	m := InitializeModel(notation.DefaultConfig(), &hsl, []notation.Notation{notation.Hex}, "hsl(0, 150%, 50%)", nil)
	assert.False(t, m.HasResult())
	require.Error(t, m.Err)
	assert.Contains(t, m.Err.Error(), "saturation 150%")

	m.Input.SetValue("hsl(0, 100%, 50%)")
	m.Refresh()
	require.True(t, m.HasResult())
	assert.Equal(t, "#FF0000", m.Result.Renderings[0].Value)
}

func TestCycleSource(t *testing.T) {
	m := InitializeModel(notation.DefaultConfig(), nil, nil, "red", nil)
	m.CycleSource(1)
	require.NotNil(t, m.Source)
	assert.Equal(t, notation.Hex, *m.Source)
	assert.Error(t, m.Err, "red is not hex")

	m.CycleSource(-1)
	assert.Nil(t, m.Source)
	assert.True(t, m.HasResult())

	m.CycleSource(-1)
	require.NotNil(t, m.Source)
	assert.Equal(t, notation.Oklch, *m.Source)
	m.CycleSource(1)
	assert.Nil(t, m.Source)
}

func TestMoveSelection(t *testing.T) {
	m := InitializeModel(notation.DefaultConfig(), nil, []notation.Notation{notation.Hex, notation.RGB, notation.Name}, "#f00", nil)
	m.MoveSelection(-1)
	assert.Equal(t, 2, m.Selected)
	r, ok := m.SelectedRendering()
	require.True(t, ok)
	assert.Equal(t, "red", r.Value)

	m.MoveSelection(1)
	assert.Equal(t, 0, m.Selected)
}

func TestSetStatusMessage(t *testing.T) {
	m := InitializeModel(notation.DefaultConfig(), nil, nil, "", nil)
	cmd := m.SetStatusMessage("copied", StatusBarSuccess, time.Millisecond)
	require.NotNil(t, cmd)
	assert.Equal(t, "copied", m.StatusBarMessage)
	assert.Equal(t, ClearStatusBarMsg{}, cmd())

	first := m.SetStatusMessage("one", StatusBarInfo, time.Millisecond)
	m.SetStatusMessage("two", StatusBarInfo, time.Millisecond)
	assert.Nil(t, first(), "superseded messages do not clear the newer one")

	m.ClearStatus()
	assert.Empty(t, m.StatusBarMessage)
}

func TestListenForLogs(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	m := InitializeModel(notation.DefaultConfig(), nil, nil, "", ch)
	ch <- logging.LogEntry{Level: logging.LevelWarn, Message: "hello"}

	msg := m.ListenForLogs()()
	got, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Entry.Message)

	close(ch)
	assert.Nil(t, m.ListenForLogs()())
	assert.Nil(t, InitializeModel(notation.DefaultConfig(), nil, nil, "", nil).ListenForLogs())
}
