// Package logging sets up the process-wide slog logger.
//
// The TUI owns the terminal, so log output never goes to stdout or stderr:
// with debug disabled records are discarded, with debug enabled they are
// appended to a file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const timeFormat = "2006-01-02 15:04:05.000"

// Init installs the default logger. It returns a cleanup function that
// closes the log file, if one was opened.
func Init(path string, debug bool) (func(), error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(New(f, slog.LevelDebug))
	slog.Debug("debug logging enabled", "path", path, "pid", os.Getpid())

	return func() { _ = f.Close() }, nil
}

// New returns a logger writing colorless tint records to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:  false,
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    true,
	}))
}

// Component returns the default logger tagged with a component name.
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}

// Since is a small helper for timing log fields.
func Since(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
