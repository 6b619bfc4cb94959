package meta

import (
	"fmt"
	"slices"
	"strings"
)

// Severity levels for table diagnostics. Lower values are more severe.
type Severity int

const (
	SeverityError   Severity = 0 // Decode will fail or the entry is unreachable
	SeverityWarning Severity = 1 // Entry is shadowed or renders as unknown
	SeverityInfo    Severity = 2 // Harmless, but probably not intended
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// Diagnostic codes reported by Check.
const (
	DiagDuplicateModule   = "duplicate-module-id"
	DiagDuplicateEvent    = "duplicate-event-id"
	DiagDuplicateFunction = "duplicate-function-id"
	DiagDuplicateEnum     = "duplicate-enum-value"
	DiagUnknownParamType  = "unknown-param-type"
	DiagEnumWithoutValues = "enum-without-values"
	DiagEnumValuesIgnored = "enum-values-ignored"
	DiagModuleIDRange     = "module-id-range"
	DiagEventIDRange      = "event-id-range"
	DiagFunctionIDRange   = "function-id-range"
	DiagEnumValueRange    = "enum-value-range"
)

// Diagnostic is an issue found in the metadata tables.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "duplicate-event-id"
	Message  string
	Table    string // "modules", "globals", "functions" or "module <name>"
}

// String returns "[severity] table: message".
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Severity.String())
	b.WriteString("] ")
	if d.Table != "" {
		b.WriteString(d.Table)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	return b.String()
}

// CheckConfig filters the diagnostics returned by Check.
type CheckConfig struct {
	// MinSeverity drops diagnostics less severe than this level.
	// The zero value keeps errors only; use SeverityInfo to keep everything.
	MinSeverity Severity

	// Ignore lists diagnostic codes to suppress entirely.
	// Supports a leading or trailing * (e.g. "duplicate-*").
	Ignore []string
}

// DefaultCheckConfig reports everything.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{MinSeverity: SeverityInfo}
}

// ShouldReport returns true if a diagnostic with the given code and severity
// passes the filter.
func (c CheckConfig) ShouldReport(code string, sev Severity) bool {
	if slices.ContainsFunc(c.Ignore, func(pattern string) bool {
		return MatchGlob(pattern, code)
	}) {
		return false
	}
	return sev <= c.MinSeverity
}

// MatchGlob performs simple glob matching with * wildcard.
func MatchGlob(pattern, s string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(s, suffix)
	}
	return pattern == s
}

// HasErrors reports whether any diagnostic has SeverityError.
func HasErrors(diags []Diagnostic) bool {
	return slices.ContainsFunc(diags, func(d Diagnostic) bool {
		return d.Severity == SeverityError
	})
}
