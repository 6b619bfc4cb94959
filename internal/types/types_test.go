package types

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerNil(t *testing.T) {
	var l Logger
	if l.Enabled(slog.LevelError) {
		t.Error("nil logger reported enabled")
	}
	if l.TraceEnabled() {
		t.Error("nil logger reported trace enabled")
	}
	// must not panic
	l.Log(slog.LevelError, "dropped")
	l.Trace("dropped")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	if !l.Enabled(slog.LevelDebug) {
		t.Error("debug should be enabled")
	}
	if l.TraceEnabled() {
		t.Error("trace should be disabled at debug level")
	}

	l.Trace("hidden")
	l.Log(slog.LevelDebug, "shown", Hex("code", 0x1000_0005))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("trace record emitted: %s", out)
	}
	if !strings.Contains(out, "code=0x10000005") {
		t.Errorf("missing hex attribute: %s", out)
	}
}
