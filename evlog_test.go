package evlog

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracedecode/evlog/eventcode"
	"github.com/tracedecode/evlog/internal/testutil"
	"github.com/tracedecode/evlog/meta"
)

func newBufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestWithLoggerTrace(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	d := newTestDecoder(WithLogger(logger))

	_, err := d.Decode(mustEncode(eventcode.EncodeFunctionEnter(40, 999)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "decoded event")
	assert.Contains(t, out, "code=0x1A0003E7")
	assert.Contains(t, out, "unknown module")
	assert.Contains(t, out, "unknown function")
}

func TestWithLoggerDebugSkipsTrace(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)
	d := newTestDecoder(WithLogger(logger))

	_, err := d.Decode(mustEncode(eventcode.EncodeLocalEvent(testutil.ModuleCore, testutil.EventCoreState, 9)))
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "decoded event")
	assert.Contains(t, out, "unknown enum value")
}

func TestWithLoggerSkipWarning(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)
	d := newTestDecoder(WithLogger(logger), WithErrorPolicy(SkipOnError))

	_, err := d.DecodeAll(streamWithBrokenEntries())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "skipping event code")
	assert.NotContains(t, buf.String(), "unknown")
}

func TestNoLogger(t *testing.T) {
	d := newTestDecoder()
	_, err := d.Decode(0xFFFF_FFFF)
	require.NoError(t, err)
}

func TestDecoderCheck(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)
	d := newTestDecoder(WithLogger(logger))

	diags := d.Check(DefaultCheckConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, meta.DiagUnknownParamType, diags[0].Code)
	assert.Equal(t, "module broken", diags[0].Table)
	assert.Contains(t, buf.String(), "table diagnostic")
}

func TestDecoderConcurrentUse(t *testing.T) {
	d := newTestDecoder()
	code := mustEncode(eventcode.EncodeLocalEvent(testutil.ModuleCore, testutil.EventCoreState, 2))

	var wg sync.WaitGroup
	texts := make([]string, 16)
	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := d.Decode(code)
			if err == nil {
				texts[i] = res.String()
			}
		}(i)
	}
	wg.Wait()

	for _, got := range texts {
		assert.Equal(t, "Event: state Busy", got)
	}
}

func TestWithLoggerFallbacks(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		msg  string
	}{
		{"module", mustEncode(eventcode.EncodeGlobalEvent(50, testutil.GlobalBoot, 0)), "unknown module"},
		{"function", mustEncode(eventcode.EncodeFunctionExit(testutil.ModuleCore, 0x1234)), "unknown function"},
		{"local event", mustEncode(eventcode.EncodeLocalEvent(testutil.ModuleCore, 40, 0)), "unknown local event"},
		{"global event", mustEncode(eventcode.EncodeGlobalEvent(testutil.ModuleCore, 40, 0)), "unknown global event"},
		{"event type", 0x5000_0000, "unknown event type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(slog.LevelDebug)
			d := newTestDecoder(WithLogger(logger))

			_, err := d.Decode(tt.code)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.msg)
		})
	}

	// known ids log nothing at debug level
	logger, buf := newBufferLogger(slog.LevelDebug)
	d := newTestDecoder(WithLogger(logger))
	_, err := d.Decode(mustEncode(eventcode.EncodeLocalEvent(testutil.ModuleCore, testutil.EventCoreRetries, 3)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
