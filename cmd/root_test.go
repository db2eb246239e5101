package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/colorspace"
	"huectl/internal/notation"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "huectl", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.Contains(t, rootCmd.Long, "Hunter Lab")

	for _, name := range []string{"config", "debug", "illuminant", "observer", "alpha-position", "adaptation"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "persistent flag --%s", name)
	}
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"convert", "notations", "ui", "mcp", "config", "version", "self-update"} {
		assert.True(t, found[name], "subcommand %s", name)
	}
}

func TestVersionFlag(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	SetVersion("2.0.1")

	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "huectl version 2.0.1\n", out)
}

func TestNewApplicationAppliesFlagOverrides(t *testing.T) {
	tests := []struct {
		name  string
		set   func()
		check func(t *testing.T, cfg notation.Config)
	}{
		{
			name: "illuminant",
			set:  func() { illuminant = "D50" },
			check: func(t *testing.T, cfg notation.Config) {
				assert.Equal(t, colorspace.IlluminantD50, cfg.Illuminant)
			},
		},
		{
			name: "observer",
			set:  func() { observer = "10" },
			check: func(t *testing.T, cfg notation.Config) {
				assert.Equal(t, colorspace.Observer10, cfg.Observer)
			},
		},
		{
			name: "alpha position",
			set:  func() { alphaPosition = "start" },
			check: func(t *testing.T, cfg notation.Config) {
				assert.Equal(t, notation.AlphaStart, cfg.AlphaPosition)
			},
		},
		{
			name: "adaptation",
			set:  func() { adaptation = "bradford" },
			check: func(t *testing.T, cfg notation.Config) {
				assert.Equal(t, colorspace.AdaptBradford, cfg.Adaptation)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(rootCmd)
			t.Cleanup(func() { resetFlags(rootCmd) })
			configPath = t.TempDir()
			require.NoError(t, writeConfigFile(configPath, "color:\n  illuminant: A\n  observer: \"2\"\n"))
			tt.set()

			application, err := newApplication()
			require.NoError(t, err)
			cfg, err := application.NotationConfig()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
