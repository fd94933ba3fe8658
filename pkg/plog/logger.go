// Package plog is a thin slog wrapper with a handler tuned for terminal
// output: level prefix, message, then key=value pairs on one line.
package plog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with convenience methods.
type Logger struct {
	*slog.Logger
}

type lineHandler struct {
	level  slog.Level
	output io.Writer
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	switch r.Level {
	case slog.LevelDebug:
		b.WriteString("DEBUG ")
	case slog.LevelWarn:
		b.WriteString("WARN  ")
	case slog.LevelError:
		b.WriteString("ERROR ")
	default:
		b.WriteString("INFO  ")
	}

	b.WriteString(r.Message)

	if r.NumAttrs() > 0 {
		first := true
		r.Attrs(func(a slog.Attr) bool {
			if first {
				b.WriteString("  ")
				first = false
			} else {
				b.WriteString(" ")
			}
			b.WriteString(a.Key)
			b.WriteString("=")
			b.WriteString(a.Value.String())
			return true
		})
	}

	b.WriteString("\n")
	_, err := h.output.Write([]byte(b.String()))
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Persistent attrs are not needed for CLI output.
	return h
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	return h
}

// NewLogger creates a logger with the specified level and output.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}
	return &Logger{Logger: slog.New(&lineHandler{level: level, output: output})}
}

// NewDefault creates a logger with INFO level.
func NewDefault() *Logger {
	return NewLogger(slog.LevelInfo, os.Stderr)
}

// NewVerbose creates a logger with DEBUG level.
func NewVerbose() *Logger {
	return NewLogger(slog.LevelDebug, os.Stderr)
}

// Printf formats and logs at INFO level, for callers that expect a
// log.Printf-shaped sink.
func (l *Logger) Printf(format string, args ...any) {
	l.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// Fatal logs at ERROR level and exits with code 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}

// Fatalf formats and logs at ERROR level, then exits with code 1.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
