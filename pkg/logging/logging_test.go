package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden")
	Info("Test", "shown %d", 1)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"shown 1\"")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI(t *testing.T) {
	ch := initTUI(LevelInfo, 2)
	defer CloseTUIChannel()

	Debug("Test", "filtered")
	Warn("Test", "first")
	Error("Test", errors.New("boom"), "second")
	Info("Test", "overflow")

	entry := <-ch
	assert.Equal(t, LevelWarn, entry.Level)
	assert.Equal(t, "first", entry.Message)
	entry = <-ch
	assert.Equal(t, LevelError, entry.Level)
	require.Error(t, entry.Err)
	assert.Equal(t, "Test", entry.Subsystem)
	assert.Equal(t, int64(1), Dropped())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, "error": LevelError}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "UNKNOWN", got.String())
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
