package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesPlainRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("scan done", "entries", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "scan done")
	assert.Contains(t, out, "entries=3")
	assert.NotContains(t, out, "\x1b[", "records must not carry ANSI colors")
}

func TestInit_DebugDisabled_NoFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "cyberdesk.log")

	cleanup, err := Init(path, false)
	require.NoError(t, err)
	defer cleanup()

	slog.Info("dropped")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInit_DebugEnabled_WritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "cyberdesk.log")

	cleanup, err := Init(path, true)
	require.NoError(t, err)

	Component("scanner").Info("hello", Since(time.Now()))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug logging enabled")
	assert.Contains(t, string(data), "component=scanner")
	assert.Contains(t, string(data), "elapsed=")
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), true)
	assert.Error(t, err)
}
