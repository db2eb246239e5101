package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huectl/internal/cli"
	"huectl/internal/config"
)

var configOutput string

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after layering the defaults, the user file
(~/.config/huectl/config.yaml), the project file (./.huectl/config.yaml)
and the command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		format := cli.OutputFormatYAML
		if configOutput != "" {
			if format, err = cli.ParseOutputFormat(configOutput); err != nil {
				return err
			}
		}
		return cli.NewPrinter(cmd.OutOrStdout(), format, false).PrintValue(application.Settings())
	},
}

// configPathCmd prints where configuration files are looked up.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, project, err := config.Paths()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "user:    %s\n", user)
		fmt.Fprintf(out, "project: %s\n", project)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "Output format (yaml or json)")
}
