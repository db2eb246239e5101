package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"huectl/internal/config"
)

// resetFlags restores every flag of c and its children to its default so
// package-level flag variables do not leak between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func writeConfigFile(dir, content string) error {
	return os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
}

// execute runs the root command with a config directory holding content.
func execute(t *testing.T, content string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, writeConfigFile(dir, content))

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain output",
			args: []string{"convert", "--to", "hsl", "--to", "rgb", "-o", "plain", "#ff0000"},
			want: "hsl  hsl(0, 100%, 50%)\nrgb  rgb(255, 0, 0)\n",
		},
		{
			name: "arguments are joined",
			args: []string{"convert", "--to", "hex", "-o", "plain", "rgb(255,", "0,", "0)"},
			want: "hex  #FF0000\n",
		},
		{
			name: "comma separated targets",
			args: []string{"convert", "--to", "hex,name", "-o", "plain", "--from", "rgb", "rgb(255, 0, 0)"},
			want: "hex   #FF0000\nname  red\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCommandUsesConfiguredOutput(t *testing.T) {
	out, err := execute(t, "ui:\n  output: yaml\n", "convert", "--to", "hex", "red")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "name", got["source"])
	assert.Equal(t, "#FF0000", got["hex"])
}

func TestConvertCommandFlagOverrides(t *testing.T) {
	out, err := execute(t, "", "--alpha-position", "end", "convert", "--to", "rgb", "-o", "plain", "#FF000080")
	require.NoError(t, err)
	assert.Equal(t, "rgb  rgba(255, 0, 0, 0.502)\n", out)
}

func TestConvertCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr string
	}{
		{name: "unparsable", args: []string{"convert", "notacolor"}, wantErr: `unrecognized color "notacolor"`},
		{name: "unknown source", args: []string{"convert", "--from", "bogus", "red"}, wantErr: `failed to get color notation from "bogus"`},
		{name: "unknown target", args: []string{"convert", "--to", "bogus", "red"}, wantErr: `failed to get color notation from "bogus"`},
		{name: "bad output", args: []string{"convert", "-o", "xml", "red"}, wantErr: "xml"},
		{name: "bad flag override", args: []string{"--observer", "5", "convert", "red"}, wantErr: "color.observer"},
		{name: "bad config file", content: "color:\n  bogus: 1\n", args: []string{"convert", "red"}, wantErr: "failed to initialize application"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.content, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConvertCommandCopy(t *testing.T) {
	orig := writeClipboard
	defer func() { writeClipboard = orig }()

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	_, err := execute(t, "", "convert", "--copy", "--to", "hsl", "-o", "plain", "red")
	require.NoError(t, err)
	assert.Equal(t, "hsl(0, 100%, 50%)", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, err = execute(t, "", "convert", "--copy", "--to", "hsl", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Copy HSL failed")
}

func TestNotationsCommand(t *testing.T) {
	out, err := execute(t, "", "notations", "-o", "plain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "hex"), lines[0])
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "color:\n  illuminant: D50\n", "--observer", "10", "config")
	require.NoError(t, err)

	var got config.HuectlConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "D50", got.Color.Illuminant)
	assert.Equal(t, "10", got.Color.Observer)
	assert.Equal(t, "table", got.UI.Output)
}

func TestVersionCommand(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	SetVersion("1.2.3")

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "huectl version 1.2.3\n", out)
}
