package main

import (
	"log/slog"
	"os"
)

// NewLogger returns the structured logger handed to every crop tool
// component. JSON lines go to stderr; at debug level source positions are
// recorded so drag state transitions trace back to their call site.
func NewLogger(level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if l, ok := level.(slog.Level); ok && l <= slog.LevelDebug {
		opts.AddSource = true
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
