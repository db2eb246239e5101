package app

import (
	"fmt"
	"io"
	"os"

	"huectl/internal/config"
	"huectl/internal/notation"
	"huectl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs huectl
type Application struct {
	config *Config
}

// NewApplication initialises logging and loads the configuration.
// Logs go to stderr so stdout stays clean for results and MCP traffic.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, os.Stderr)
}

func newApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, logOutput)

	a := &Application{config: cfg}
	loaded, err := a.load()
	if err != nil {
		return nil, err
	}
	cfg.HuectlConfig = &loaded
	return a, nil
}

// load reads the configuration files and applies the overrides.
func (a *Application) load() (config.HuectlConfig, error) {
	var (
		loaded config.HuectlConfig
		err    error
	)
	if a.config.ConfigPath != "" {
		loaded, err = config.LoadConfigFromPath(a.config.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load huectl configuration from path: %s", a.config.ConfigPath)
			return config.HuectlConfig{}, fmt.Errorf("failed to load huectl configuration from path %s: %w", a.config.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", a.config.ConfigPath)
	} else {
		loaded, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load huectl configuration")
			return config.HuectlConfig{}, fmt.Errorf("failed to load huectl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	merged := config.MergeConfigs(loaded, a.config.Overrides)
	if err := merged.Validate(); err != nil {
		return config.HuectlConfig{}, err
	}
	return merged, nil
}

// Settings returns the configuration loaded at startup.
func (a *Application) Settings() config.HuectlConfig {
	return *a.config.HuectlConfig
}

// NotationConfig resolves the startup configuration for the notation core.
func (a *Application) NotationConfig() (notation.Config, error) {
	return a.Settings().NotationConfig(nil)
}

// reloadNotationConfig re-reads the configuration files. Long-running
// modes call it per request so edits apply without a restart.
func (a *Application) reloadNotationConfig() (notation.Config, error) {
	loaded, err := a.load()
	if err != nil {
		return notation.Config{}, err
	}
	return loaded.NotationConfig(nil)
}
