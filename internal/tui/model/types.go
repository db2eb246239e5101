// Package model holds the state of the interactive converter and the
// transitions the controller applies to it.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"huectl/internal/cli"
	"huectl/internal/notation"
	"huectl/pkg/logging"
)

// MessageType defines the type of status bar message.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarWarning
	StatusBarError
)

// ClearStatusBarMsg is sent when a status message expires.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// Model is the converter state.
type Model struct {
	Input textinput.Model
	Help  help.Model

	// Source is the notation input is read as; nil detects it.
	Source    *notation.Notation
	Notations []notation.Notation
	Config    notation.Config

	// Result is valid when Err is nil and the input is not blank.
	Result   cli.Result
	Err      error
	Selected int

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	LogChannel <-chan logging.LogEntry
	Width      int
	ShowHelp   bool
}
