// Package types provides internal types shared across evlog packages.
package types

import (
	"context"
	"fmt"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-entry logging (one record per decoded event code).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ctx is a package-level context for logging.
var ctx = context.Background()

// Logger wraps slog.Logger with nil-safe helpers.
type Logger struct {
	L *slog.Logger
}

// Enabled returns true if logging is enabled at the given level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.Enabled(level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a trace-level log.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// Hex formats an event code attribute as 0x%08X.
func Hex(key string, v uint32) slog.Attr {
	return slog.Any(key, hexValue(v))
}

type hexValue uint32

func (h hexValue) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("0x%08X", uint32(h)))
}
