package meta

import (
	"fmt"

	"github.com/tracedecode/evlog/eventcode"
)

type checker struct {
	cfg   CheckConfig
	diags []Diagnostic
}

func (c *checker) report(sev Severity, code, table, format string, args ...any) {
	if !c.cfg.ShouldReport(code, sev) {
		return
	}
	c.diags = append(c.diags, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Table:    table,
	})
}

// Check inspects the tables for entries the decoder cannot reach or cannot
// render. Construction of a decoder never calls it; it is meant for table
// authors and for tests of generated tables.
func Check(modules []Module, globals []GlobalEvent, functions []FunctionEntry, cfg CheckConfig) []Diagnostic {
	c := &checker{cfg: cfg}

	seenModules := make(map[uint32]string, len(modules))
	for _, m := range modules {
		if m.ID > eventcode.ModuleMask {
			c.report(SeverityError, DiagModuleIDRange, "modules",
				"module %q id %d does not fit in 6 bits", m.Name, m.ID)
		}
		if first, ok := seenModules[m.ID]; ok {
			c.report(SeverityWarning, DiagDuplicateModule, "modules",
				"module %q shadowed by %q (id %d)", m.Name, first, m.ID)
		} else {
			seenModules[m.ID] = m.Name
		}
		c.checkEvents("module "+m.Name, m.LocalEvents)
	}

	c.checkEvents("globals", globals)

	seenFunctions := make(map[uint32]string, len(functions))
	for _, f := range functions {
		if f.ID > eventcode.FunctionMask {
			c.report(SeverityError, DiagFunctionIDRange, "functions",
				"function %q id %d does not fit in 22 bits", f.Name, f.ID)
		}
		if first, ok := seenFunctions[f.ID]; ok {
			c.report(SeverityWarning, DiagDuplicateFunction, "functions",
				"function %q shadowed by %q (id %d)", f.Name, first, f.ID)
		} else {
			seenFunctions[f.ID] = f.Name
		}
	}

	return c.diags
}

func (c *checker) checkEvents(table string, events []Event) {
	seen := make(map[uint32]string, len(events))
	for _, e := range events {
		if e.ID > eventcode.EventMask {
			c.report(SeverityError, DiagEventIDRange, table,
				"event %q id %d does not fit in 6 bits", e.Text, e.ID)
		}
		if first, ok := seen[e.ID]; ok {
			c.report(SeverityWarning, DiagDuplicateEvent, table,
				"event %q shadowed by %q (id %d)", e.Text, first, e.ID)
		} else {
			seen[e.ID] = e.Text
		}

		switch {
		case !e.ParamType.Known():
			c.report(SeverityError, DiagUnknownParamType, table,
				"event %q has unhandled param type %q", e.Text, string(e.ParamType))
		case e.ParamType == ParamEnum && len(e.EnumValues) == 0:
			c.report(SeverityWarning, DiagEnumWithoutValues, table,
				"event %q is an enum with no values", e.Text)
		case e.ParamType != ParamEnum && len(e.EnumValues) > 0:
			c.report(SeverityInfo, DiagEnumValuesIgnored, table,
				"event %q lists enum values but has param type %s", e.Text, e.ParamType)
		}

		if e.ParamType == ParamEnum {
			c.checkEnum(table, e)
		}
	}
}

func (c *checker) checkEnum(table string, e Event) {
	seen := make(map[uint32]string, len(e.EnumValues))
	for _, v := range e.EnumValues {
		if v.Value > eventcode.ParamMask {
			c.report(SeverityWarning, DiagEnumValueRange, table,
				"event %q enum %q value %d exceeds the 16-bit parameter", e.Text, v.Text, v.Value)
		}
		if first, ok := seen[v.Value]; ok {
			c.report(SeverityWarning, DiagDuplicateEnum, table,
				"event %q enum %q shadowed by %q (value %d)", e.Text, v.Text, first, v.Value)
		} else {
			seen[v.Value] = v.Text
		}
	}
}
