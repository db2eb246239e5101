package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"huectl/internal/app"
)

// Persistent flags shared by every subcommand.
var (
	configPath    string
	debug         bool
	illuminant    string
	observer      string
	alphaPosition string
	adaptation    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huectl",
	Short: "Convert colors between notations",
	Long: `huectl converts colors between hex, RGB, HSL, HSV, HWB, CMYK, CIE XYZ,
CIELAB, CIELCh, LMS, Hunter Lab, Oklab, Oklch and named colors.

It runs as a one-shot converter, an interactive terminal UI, or an MCP
server that exposes the conversions as tools for AI assistants.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unparsable colors)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps the application from the persistent flags.
func newApplication() (*app.Application, error) {
	cfg := app.NewConfig(configPath, debug)
	cfg.Version = rootCmd.Version
	cfg.Overrides.Color.Illuminant = illuminant
	cfg.Overrides.Color.Observer = observer
	cfg.Overrides.Color.AlphaPosition = alphaPosition
	cfg.Overrides.Color.Adaptation = adaptation
	return app.NewApplication(cfg)
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "huectl version %s\n" .Version}}`)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Load config.yaml from this directory instead of the user and project locations")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.StringVar(&illuminant, "illuminant", "", "Reference illuminant for CIE notations (e.g. D65, D50, F2)")
	flags.StringVar(&observer, "observer", "", "Standard observer in degrees (2 or 10)")
	flags.StringVar(&alphaPosition, "alpha-position", "", "Where alpha is written and accepted (none, end or start)")
	flags.StringVar(&adaptation, "adaptation", "", "Chromatic adaptation to the reference white (none or bradford)")
}
