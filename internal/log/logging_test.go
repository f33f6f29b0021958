package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("verbose"))
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatText, ResolveFormat("text", &buf))
	assert.Equal(t, FormatJSON, ResolveFormat("JSON", &buf))
	assert.Equal(t, FormatJSON, ResolveFormat("auto", &buf), "a buffer is not a terminal")
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewLogger(slog.LevelInfo, FormatAuto, &console, &file)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(console.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "value", record["key"])

	assert.Contains(t, file.String(), "msg=shown")
	assert.NotContains(t, file.String(), "hidden")
}

func TestMultiHandler_RespectsEachLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	h := MultiHandler{hs: []slog.Handler{
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&loud, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}
	logger := slog.New(h).With("run", 1).WithGroup("g")
	logger.Info("info")
	logger.Error("error")

	assert.NotContains(t, quiet.String(), "msg=info")
	assert.Contains(t, quiet.String(), "msg=error")
	assert.Contains(t, loud.String(), "msg=info")
	assert.Contains(t, loud.String(), "run=1")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	f := LevelFilter{
		pass: func(l slog.Level) bool { return l >= slog.LevelError },
		h:    slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	logger := slog.New(f)
	logger.Warn("dropped")
	logger.Error("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflgen.log")
	logger, closers, err := SetupLogger("debug", "text", path)
	require.NoError(t, err)
	logger.Debug("to file", "n", 1)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

func TestSetupLogger_BadFile(t *testing.T) {
	_, _, err := SetupLogger("info", "auto", filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
