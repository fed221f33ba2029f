// Package logger holds the process-wide slog logger for bulkctl.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output until Init is
// called with a Path.
var L = discard()

var file *os.File

// Options configures the logger initialization.
type Options struct {
	Path  string     // Log file, appended to. Empty disables logging
	Level slog.Level // Minimum log level
}

// Init configures logging. Call before any log calls.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if opts.Path == "" {
		L = discard()
		return nil
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	file = f
	L = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close releases the log file, if any, and resets L to discard.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	L = discard()
	return err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }
