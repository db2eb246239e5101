package app

import (
	"context"
	"io"

	"huectl/internal/mcpserver"
	"huectl/internal/notation"
	"huectl/internal/tui/controller"
	"huectl/pkg/logging"
)

// UIOptions selects what the interactive converter starts with.
type UIOptions struct {
	Initial string
	// Source is the notation input is read as; nil detects it.
	Source *notation.Notation
	Copy   controller.CopyFunc
}

// RunUI executes the interactive terminal UI mode.
func (a *Application) RunUI(ctx context.Context, opts UIOptions) error {
	cfg, err := a.NotationConfig()
	if err != nil {
		return err
	}
	settings := a.Settings()
	shown, err := settings.Notations()
	if err != nil {
		return err
	}
	selected, err := settings.DefaultNotation()
	if err != nil {
		return err
	}

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if a.config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(controller.Options{
		Config:    cfg,
		Source:    opts.Source,
		Notations: shown,
		Selected:  selected,
		Initial:   opts.Initial,
		Copy:      opts.Copy,
	}, logChan)

	defer quitOnCancel(ctx, p.Quit)()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}

// quitOnCancel calls quit once ctx is done. The returned stop function
// ends the watch without calling quit.
func quitOnCancel(ctx context.Context, quit func()) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			quit()
		case <-done:
		}
	}()
	return func() { close(done) }
}

// RunMCP serves the MCP tools over in and out until ctx is done.
func (a *Application) RunMCP(ctx context.Context, in io.Reader, out io.Writer) error {
	s := mcpserver.New(a.config.Version, a.reloadNotationConfig)
	return s.Serve(ctx, in, out)
}
