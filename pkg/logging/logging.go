// Package logging provides structured logging configuration and
// initialization. It wraps slog with configurable log levels and output
// formats.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured slog.Logger writing to stdout based on the
// provided configuration.
func New(cfg *Config) *slog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a configured slog.Logger writing to the given
// output. It selects a text or JSON handler based on the Format setting.
func NewWithOutput(cfg *Config, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}
