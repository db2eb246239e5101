package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the repository releases are fetched from.
const githubRepoSlug = "huectl/huectl"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update huectl to the latest release",
		Long: `Checks for the latest release of huectl on GitHub and, if it is newer
than the running version, replaces the current executable with it.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	current := rootCmd.Version
	if current == "" || current == "dev" {
		return fmt.Errorf("cannot self-update a development version (%q)", current)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found", githubRepoSlug)
	}

	out := rootCmd.OutOrStdout()
	if cmd != nil {
		out = cmd.OutOrStdout()
	}
	if latest.LessOrEqual(current) {
		fmt.Fprintf(out, "Current version (%s) is the latest\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
