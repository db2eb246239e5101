package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfUpdateCommand(t *testing.T) {
	c := newSelfUpdateCmd()
	assert.Equal(t, "self-update", c.Use)
	assert.NotNil(t, c.RunE)
	assert.Equal(t, "huectl/huectl", githubRepoSlug)

	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})
	require.NoError(t, c.Execute())
	assert.Contains(t, buf.String(), "Checks for the latest release of huectl")
}

func TestSelfUpdateRefusesDevelopmentBuilds(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	for _, version := range []string{"", "dev"} {
		t.Run("version="+version, func(t *testing.T) {
			rootCmd.Version = version
			err := runSelfUpdate(nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot self-update a development version")
		})
	}
}

func TestSelfUpdateRejectsArguments(t *testing.T) {
	_, err := execute(t, "", "self-update", "v1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
