package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// mcpCmd serves the conversion tools over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve color conversion tools over MCP (stdio)",
	Long: `Runs an MCP server on stdin/stdout exposing these tools:

  color_convert  convert a color to one or more notations
  color_parse    parse a color and return its channels
  notation_list  list the supported notations

Configuration files are re-read for every call. Logs go to stderr.

Example client configuration:
  {"mcpServers": {"huectl": {"command": "huectl", "args": ["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return application.RunMCP(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
