package logger

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
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_ConsoleText(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(DefaultConfig(), &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug("hidden")
	log.Info("maze generated", "cells", 25)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "maze generated")
	assert.Contains(t, out, "cells=25")
}

func TestNew_ConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	cfg.Level = "DEBUG"
	log, _, err := New(cfg, &buf)
	require.NoError(t, err)

	log.Debug("maze solved", "length", 9)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "maze solved", rec["msg"])
	assert.Equal(t, float64(9), rec["length"])
}

func TestNew_FileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.log")
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = path

	log, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	log.With("session", "abc").Warn("both outputs")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "both outputs")
	assert.Contains(t, string(data), "session=abc")
	assert.Contains(t, buf.String(), "both outputs")
}

func TestNew_FileWithoutPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = ""
	_, _, err := New(cfg, nil)
	assert.ErrorIs(t, err, ErrNoFilePath)
}

func TestNew_NoOutputs(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	log, _, err := New(cfg, &buf)
	require.NoError(t, err)
	log.Error("dropped")
	assert.Empty(t, buf.String())
}
