package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"huectl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/huectl"
	projectConfigDir = ".huectl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the huectl configuration by layering default, user, and project settings.
// The result is validated.
func LoadConfig() (HuectlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return HuectlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return HuectlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := config.Validate(); err != nil {
		return HuectlConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath layers dir/config.yaml over the defaults, ignoring
// the user and project locations.
func LoadConfigFromPath(dir string) (HuectlConfig, error) {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		return HuectlConfig{}, fmt.Errorf("config file %s: %w", path, err)
	}
	config, err := overlayFile(GetDefaultConfig(), path)
	if err != nil {
		return HuectlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return HuectlConfig{}, err
	}
	return config, nil
}

// overlayFile merges the file at path over base. A missing file leaves base as is.
func overlayFile(base HuectlConfig, path string) (HuectlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return MergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a HuectlConfig from a YAML file.
// Unknown keys are rejected.
func loadConfigFromFile(filePath string) (HuectlConfig, error) {
	var config HuectlConfig
	f, err := os.Open(filePath)
	if err != nil {
		return HuectlConfig{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file
			return HuectlConfig{}, nil
		}
		return HuectlConfig{}, err
	}
	return config, nil
}

// MergeConfigs merges 'overlay' config into 'base' config. Set fields of
// overlay win; a notations list replaces the base list.
func MergeConfigs(base, overlay HuectlConfig) HuectlConfig {
	merged := base

	if overlay.Color.Illuminant != "" {
		merged.Color.Illuminant = overlay.Color.Illuminant
	}
	if overlay.Color.Observer != "" {
		merged.Color.Observer = overlay.Color.Observer
	}
	if overlay.Color.AlphaPosition != "" {
		merged.Color.AlphaPosition = overlay.Color.AlphaPosition
	}
	if overlay.Color.Adaptation != "" {
		merged.Color.Adaptation = overlay.Color.Adaptation
	}
	if overlay.Color.NameTolerance != nil {
		tol := *overlay.Color.NameTolerance
		merged.Color.NameTolerance = &tol
	}

	if overlay.UI.DefaultNotation != "" {
		merged.UI.DefaultNotation = overlay.UI.DefaultNotation
	}
	if len(overlay.UI.Notations) > 0 {
		merged.UI.Notations = append([]string(nil), overlay.UI.Notations...)
	}
	if overlay.UI.Output != "" {
		merged.UI.Output = overlay.UI.Output
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// Paths returns the user and project configuration file locations.
func Paths() (user, project string, err error) {
	if user, err = getUserConfigPath(); err != nil {
		return "", "", err
	}
	if project, err = getProjectConfigPath(); err != nil {
		return "", "", err
	}
	return user, project, nil
}
