package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format int

const (
	// FormatText is human-readable key=value output.
	FormatText Format = iota
	// FormatJSON is used when stdout carries machine-readable results.
	FormatJSON
)

// New builds a logger writing to w at level.
func New(w io.Writer, format Format, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init sets the default logger to write to stderr.
func Init(format Format, level slog.Level) {
	slog.SetDefault(New(os.Stderr, format, level))
}

// InitFile sets the default logger to append to path, or to discard output
// when path is empty. The returned closer releases the file.
func InitFile(path string, level slog.Level) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(New(io.Discard, FormatText, level))
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(New(f, FormatText, level))
	return f, nil
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
