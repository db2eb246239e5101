package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"huectl/internal/cli"
	"huectl/pkg/logging"
)

var (
	convertFrom   string
	convertTo     []string
	convertCopy   bool
	convertOutput string
	convertPlain  bool
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// convertCmd converts one color to the requested notations.
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to other notations",
	Long: `Parse a color and print it in other notations.

The input notation is detected unless --from names it. Arguments are joined
with spaces, so rgb(100, 149, 237) does not need quoting beyond what the
shell requires.

Examples:
  huectl convert '#6495ED'
  huectl convert --to hsl --to oklch cornflowerblue
  huectl convert --from lab --illuminant D50 'lab(61.93, 9.3, -49.99)' -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	src, err := cli.ParseSource(convertFrom)
	if err != nil {
		logging.Error("Notation", err, "Unknown source notation %q", convertFrom)
		return err
	}
	targets, err := cli.ParseTargets(convertTo)
	if err != nil {
		logging.Error("Notation", err, "Unknown target notation in %v", convertTo)
		return err
	}
	format, err := outputFormat(application.Settings().UI.Output)
	if err != nil {
		return err
	}

	cfg, err := application.NotationConfig()
	if err != nil {
		return err
	}
	res, err := cli.Convert(strings.Join(args, " "), cli.ConvertOptions{From: src, To: targets}, cfg)
	if err != nil {
		return err
	}

	if convertCopy && len(res.Renderings) > 0 {
		first := res.Renderings[0]
		if err := writeClipboard(first.Value); err != nil {
			return fmt.Errorf("%s failed: %w", first.Label, err)
		}
		logging.Info("Convert", "Copied %s to clipboard", first.Value)
	}

	return cli.NewPrinter(cmd.OutOrStdout(), format, useColor(cmd)).PrintResult(res)
}

// outputFormat picks -o, then the configured default.
func outputFormat(configured string) (cli.OutputFormat, error) {
	if convertOutput != "" {
		return cli.ParseOutputFormat(convertOutput)
	}
	return cli.ParseOutputFormat(configured)
}

// useColor reports whether tables may use ANSI colors.
func useColor(cmd *cobra.Command) bool {
	if convertPlain || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cmd.OutOrStdout() == os.Stdout
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "auto", "Notation the input is written in, or auto")
	convertCmd.Flags().StringSliceVar(&convertTo, "to", nil, "Notations to render (repeatable), or all")
	convertCmd.Flags().BoolVar(&convertCopy, "copy", false, "Copy the first rendering to the clipboard")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output format (table, plain, json, yaml)")
	convertCmd.Flags().BoolVar(&convertPlain, "no-color", false, "Disable colored table output")
}
