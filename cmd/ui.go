package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"huectl/internal/app"
	"huectl/internal/cli"
	"huectl/pkg/logging"
)

var uiFrom string

// uiCmd starts the interactive converter.
var uiCmd = &cobra.Command{
	Use:   "ui [color]",
	Short: "Start the interactive color converter",
	Long: `Starts a terminal UI with an input line, a swatch of the parsed color and
one row per configured notation.

Keys:
  up/down     select a row
  enter       copy the selected row to the clipboard
  tab         cycle the input notation (auto, then each notation)
  f1          toggle help
  esc/ctrl+c  quit`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	src, err := cli.ParseSource(uiFrom)
	if err != nil {
		logging.Error("Notation", err, "Unknown source notation %q", uiFrom)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.RunUI(ctx, app.UIOptions{
		Initial: strings.Join(args, " "),
		Source:  src,
	})
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiFrom, "from", "auto", "Notation the input is read as, or auto")
}
