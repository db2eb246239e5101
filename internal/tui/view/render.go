// Package view renders the converter model.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"huectl/internal/tui/design"
	"huectl/internal/tui/model"
)

// Render draws the whole screen.
func Render(m *model.Model, keys help.KeyMap) string {
	header := design.TitleStyle.Render("huectl") +
		design.TextSecondaryStyle.Render(fmt.Sprintf(" input: %s", m.SourceLabel()))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderSwatch(m),
		lipgloss.NewStyle().PaddingLeft(design.SpaceSM).Render(renderRows(m)),
	)

	helpView := m.Help.ShortHelpView(keys.ShortHelp())
	if m.ShowHelp {
		helpView = m.Help.FullHelpView(keys.FullHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.Input.View(),
		"",
		body,
		"",
		renderStatus(m),
		helpView,
	)
}

func renderSwatch(m *model.Model) string {
	if !m.HasResult() {
		return design.EmptySwatchStyle.Render("?")
	}
	return design.SwatchStyle(m.Result.Hex).Render("")
}

func renderRows(m *model.Model) string {
	if m.Err != nil {
		return design.TextErrorStyle.Render(m.Err.Error())
	}
	if !m.HasResult() {
		return design.TextSecondaryStyle.Render("Type a color to convert it.")
	}
	rows := make([]string, 0, len(m.Result.Renderings))
	for i, r := range m.Result.Renderings {
		line := design.RowLabelStyle.Render(r.Notation) + r.Value
		if i == m.Selected {
			rows = append(rows, design.RowSelectedStyle.Render("▸ "+line))
		} else {
			rows = append(rows, design.RowStyle.Render("  "+line))
		}
	}
	return strings.Join(rows, "\n")
}

func renderStatus(m *model.Model) string {
	var style lipgloss.Style
	switch m.StatusBarMessageType {
	case model.StatusBarInfo:
		style = design.StatusBarInfoStyle
	case model.StatusBarSuccess:
		style = design.StatusBarSuccessStyle
	case model.StatusBarWarning:
		style = design.StatusBarWarningStyle
	case model.StatusBarError:
		style = design.StatusBarErrorStyle
	}
	msg := m.StatusBarMessage
	if msg == "" {
		if r, ok := m.SelectedRendering(); ok {
			msg = "enter: " + r.Label
		}
		style = design.StatusBarStyle
	}
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(msg)
}
