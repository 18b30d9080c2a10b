// Package logger builds the per-invocation logger of a climax application on top of log/slog.
//
// Console output is filtered by the CLI verbosity (-v, -q) while the optional log file is filtered
// by the stored log level, so both settings apply independently.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures [New].
type Options struct {
	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer
	// Verbosity is the minimum console level name: error, info, verbose, debug or silly.
	Verbosity string
	// File, if set, receives JSON records appended to it.
	File string
	// Level is the minimum level name for File.
	Level string
	// Timestamp prefixes console lines with the record time.
	Timestamp bool
	// Colorize colors console level labels.
	Colorize bool
}

// Logger is a [slog.Logger] with the CLI specific levels.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a logger for opts. Close it to release the log file.
func New(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	verbosity, err := ParseLevel(opts.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("verbosity: %w", err)
	}
	handlers := []slog.Handler{newConsoleHandler(console, verbosity, opts.Timestamp, opts.Colorize)}

	var file *os.File
	if opts.File != "" {
		level, err := ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceLevel,
		}))
	}
	return &Logger{Logger: slog.New(mergeHandlers(handlers...)), file: file}, nil
}

// Console returns a console-only logger at info verbosity, used before the stored settings are
// known.
func Console(w io.Writer, colorize bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Logger: slog.New(newConsoleHandler(w, LevelInfo, false, colorize))}
}

// Verbose logs at [LevelVerbose].
func (l *Logger) Verbose(msg string, args ...any) {
	l.Log(context.Background(), LevelVerbose, msg, args...)
}

// Silly logs at [LevelSilly].
func (l *Logger) Silly(msg string, args ...any) {
	l.Log(context.Background(), LevelSilly, msg, args...)
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(l))
		}
	}
	return a
}
