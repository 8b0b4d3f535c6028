// Package logging sets up the rotating JSON log file
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focustab/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Logger writes structured logs to a rotating file.
type Logger struct {
	*slog.Logger
	out io.WriteCloser
}

// New returns a Logger writing JSON records at or above level to the file
// at path. The parent directory is created if needed.
func New(path string, level slog.Level) (*Logger, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, errLogDir.Fmt(path).Wrap(err)
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return newLogger(out, level), nil
}

func newLogger(out io.WriteCloser, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{
		Logger: slog.New(handler),
		out:    out,
	}
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	return l.out.Close()
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
