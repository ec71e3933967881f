package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesToStderrByDefault(t *testing.T) {
	var stderr bytes.Buffer
	logger, closeFn, err := New(config.LogConfig{Level: "warn"}, &stderr)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Error("error launching application", "name", "Firefox")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "name=Firefox")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qmenu.log")
	var stderr bytes.Buffer

	logger, closeFn, err := New(config.LogConfig{Level: "debug", File: path}, &stderr)
	require.NoError(t, err)
	logger.Debug("scanned", "count", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "count=3")
	assert.Empty(t, stderr.String())
}

func TestDeferredFlush(t *testing.T) {
	var d Deferred
	logger := slog.New(slog.NewTextHandler(&d, nil))
	logger.Warn("no terminal command found")

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Contains(t, out.String(), "no terminal command found")

	out.Reset()
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}
