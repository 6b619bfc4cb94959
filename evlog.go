package evlog

import (
	"log/slog"

	"github.com/tracedecode/evlog/internal/types"
	"github.com/tracedecode/evlog/meta"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-entry logging (one record per decoded event code).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures a Decoder.
type Option func(*config)

type config struct {
	logger *slog.Logger
	policy ErrorPolicy
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithErrorPolicy sets the policy DecodeAll uses for entries that fail to
// decode. The default is AbortOnError.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *config) { c.policy = p }
}

// Decoder turns packed event codes into Results using three metadata tables.
//
// The tables are stored as given and never modified. A Decoder is safe for
// concurrent use provided the caller does not modify the tables either.
type Decoder struct {
	log types.Logger

	modules   []meta.Module
	globals   []meta.GlobalEvent
	functions []meta.FunctionEntry
	policy    ErrorPolicy
}

// New returns a Decoder over the given tables. The tables are not validated;
// unknown ids decode to placeholders and an unhandled param type surfaces as
// an error from Decode. Use Check to validate tables up front.
//
// Example:
//
//	d := evlog.New(modules, globals, functions,
//	    evlog.WithLogger(slog.Default()),
//	)
//	res, err := d.Decode(0x12C0040B)
func New(modules []Module, globals []GlobalEvent, functions []FunctionEntry, opts ...Option) *Decoder {
	cfg := config{policy: AbortOnError}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decoder{
		log:       types.Logger{L: cfg.logger},
		modules:   modules,
		globals:   globals,
		functions: functions,
		policy:    cfg.policy,
	}
}

// Check runs meta.Check over the decoder's tables and logs every
// diagnostic: errors at Warn, the rest at Debug.
func (d *Decoder) Check(cfg CheckConfig) []Diagnostic {
	diags := meta.Check(d.modules, d.globals, d.functions, cfg)
	for _, diag := range diags {
		level := slog.LevelDebug
		if diag.Severity == meta.SeverityError {
			level = slog.LevelWarn
		}
		d.log.Log(level, "table diagnostic",
			slog.String("code", diag.Code),
			slog.String("table", diag.Table),
			slog.String("message", diag.Message))
	}
	return diags
}
