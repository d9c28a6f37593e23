// Package logger builds the slog logger used for verbose diagnostics.
// When verbose mode is enabled via the --verbose flag, debug records
// describing each conversion stage are written to stderr.
package logger

import (
	"context"
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Verbose loggers emit debug
// records; otherwise only warnings and errors pass.
// A nil writer discards everything.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// IsVerbose reports whether l emits debug records.
func IsVerbose(l *slog.Logger) bool {
	return l != nil && l.Enabled(context.Background(), slog.LevelDebug)
}

// dropTime removes the top-level timestamp; CLI output is read live.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
