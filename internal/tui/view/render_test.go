package view

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"huectl/internal/notation"
	"huectl/internal/tui/model"
)

type testKeys struct{}

func (testKeys) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))}
}

func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func TestRender(t *testing.T) {
	m := model.InitializeModel(notation.DefaultConfig(), nil, []notation.Notation{notation.Hex, notation.Name}, "red", nil)
	out := Render(m, testKeys{})
	assert.Contains(t, out, "input: auto")
	assert.Contains(t, out, "#FF0000")
	assert.Contains(t, out, "▸ ")
	assert.Contains(t, out, "enter: Copy Hex Code")
	assert.Contains(t, out, "quit")
}

func TestRenderError(t *testing.T) {
	m := model.InitializeModel(notation.DefaultConfig(), nil, nil, "", nil)
	assert.Contains(t, Render(m, testKeys{}), "Type a color")

	m.Err = errors.New("no name found")
	assert.Contains(t, Render(m, testKeys{}), "no name found")
}

func TestRenderStatus(t *testing.T) {
	m := model.InitializeModel(notation.DefaultConfig(), nil, nil, "#fff", nil)
	m.SetStatusMessage("Copied", model.StatusBarSuccess, 0)
	assert.Contains(t, Render(m, testKeys{}), "Copied")
}

func TestRenderStatusTypes(t *testing.T) {
	for _, msgType := range []model.MessageType{model.StatusBarInfo, model.StatusBarSuccess, model.StatusBarWarning, model.StatusBarError} {
		m := model.InitializeModel(notation.DefaultConfig(), nil, nil, "#fff", nil)
		m.SetStatusMessage("Reading input as hex", msgType, 0)
		assert.Contains(t, Render(m, testKeys{}), "Reading input as hex")
	}

	m := model.InitializeModel(notation.DefaultConfig(), nil, nil, "#fff", nil)
	m.ClearStatus()
	assert.Contains(t, Render(m, testKeys{}), "enter: Copy Hex Code")
}
