package app

import (
	"huectl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath loads a single directory instead of the layered files.
	ConfigPath string

	// Overrides are merged over the loaded files, e.g. from command-line flags.
	Overrides config.HuectlConfig

	// Version is reported by the MCP server.
	Version string

	// Loaded configuration
	HuectlConfig *config.HuectlConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
	}
}
