package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "focustab.log")

	l, err := New(path, slog.LevelInfo)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("interval completed", slog.Int("pomodoros", 3))

	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))

	assert.Equal(t, "interval completed", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.InDelta(t, 3, record["pomodoros"], 0)
}

func TestDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focustab.log")

	l, err := New(path, slog.LevelDebug)
	require.NoError(t, err)

	l.Debug("unable to play chime")

	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), "unable to play chime")
}
