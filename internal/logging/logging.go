// Package logging provides the structured logger used across the project,
// backed by log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text-format slog logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// NewDefault returns the standard CLI logger: warnings and errors to
// stderr, so command output on stdout stays clean for piping.
func NewDefault() *slog.Logger {
	return New(os.Stderr, "warn")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
