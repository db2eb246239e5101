package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of huectl",
		Long:  `All software has versions. This is huectl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Matches the root --version template.
			fmt.Fprintf(cmd.OutOrStdout(), "huectl version %s\n", rootCmd.Version)
		},
	}
}
