package util

import (
	"log/slog"
	"os"

	"github.com/go-logr/logr"
)

var logger logr.Logger

// InitLogger initializes the global logger with the specified log level.
// Output always goes to stderr: on the stdio transport, stdout carries the
// MCP framing and must stay free of diagnostics.
func InitLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = logr.FromSlogHandler(handler)
	slog.SetDefault(slog.New(handler))
}

// GetLogger returns the global logger instance
func GetLogger() logr.Logger {
	if logger.GetSink() == nil {
		// Initialize with default settings if not already initialized
		InitLogger(false)
	}
	return logger
}
