package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huectl/internal/cli"
)

var notationsOutput string

// notationsCmd lists the supported notations.
var notationsCmd = &cobra.Command{
	Use:     "notations",
	Aliases: []string{"list"},
	Short:   "List supported color notations",
	Long: `List every supported notation with its token, copy label and an example
rendered with the current settings. Tokens and labels are both accepted by
--from and --to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		cfg, err := application.NotationConfig()
		if err != nil {
			return err
		}
		configured := application.Settings().UI.Output
		if notationsOutput != "" {
			configured = notationsOutput
		}
		format, err := cli.ParseOutputFormat(configured)
		if err != nil {
			return err
		}
		return cli.NewPrinter(cmd.OutOrStdout(), format, useColor(cmd)).PrintNotations(cli.Notations(cfg))
	},
}

func init() {
	rootCmd.AddCommand(notationsCmd)
	notationsCmd.Flags().StringVarP(&notationsOutput, "output", "o", "", "Output format (table, plain, json, yaml)")
}
