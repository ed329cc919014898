// Package logging holds the process-wide structured logger. Output is
// discarded until Init enables it, so library code can log unconditionally.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output until Init runs.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Verbose bool // informational progress messages
	Debug   bool // per-field tracing
}

// Init configures logging to stderr. Call from main() before any log calls.
func Init(opts Options) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}
	if opts.Debug {
		level = slog.LevelDebug
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
