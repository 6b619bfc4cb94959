package meta

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(99), "Severity(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.sev.String(); got != tt.want {
				t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Code: DiagDuplicateEvent, Message: "event shadowed", Table: "globals"}
	if got, want := d.String(), "[warning] globals: event shadowed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	d.Table = ""
	if got, want := d.String(), "[warning] event shadowed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"*", "anything", true},
		{"duplicate-*", "duplicate-event-id", true},
		{"duplicate-*", "event-id-range", false},
		{"*-range", "event-id-range", true},
		{"*-range", "duplicate-event-id", false},
		{"exact", "exact", true},
		{"exact", "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.s, func(t *testing.T) {
			if got := MatchGlob(tt.pattern, tt.s); got != tt.want {
				t.Errorf("MatchGlob(%q, %q) = %v, want %v", tt.pattern, tt.s, got, tt.want)
			}
		})
	}
}

func TestCheckConfigShouldReport(t *testing.T) {
	cfg := CheckConfig{MinSeverity: SeverityWarning, Ignore: []string{"duplicate-*"}}

	if !cfg.ShouldReport(DiagUnknownParamType, SeverityError) {
		t.Error("error should be reported")
	}
	if !cfg.ShouldReport(DiagEnumWithoutValues, SeverityWarning) {
		t.Error("warning should be reported")
	}
	if cfg.ShouldReport(DiagEnumValuesIgnored, SeverityInfo) {
		t.Error("info should be filtered by MinSeverity")
	}
	if cfg.ShouldReport(DiagDuplicateModule, SeverityWarning) {
		t.Error("ignored code should be filtered")
	}

	var zero CheckConfig
	if zero.ShouldReport(DiagDuplicateModule, SeverityWarning) {
		t.Error("zero config should keep errors only")
	}
}
