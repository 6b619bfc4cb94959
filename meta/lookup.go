package meta

// find returns the first element of table accepted by match.
// A nil table yields no match.
func find[T any](table []T, match func(*T) bool) (T, bool) {
	for i := range table {
		if match(&table[i]) {
			return table[i], true
		}
	}
	var zero T
	return zero, false
}

// FindModule returns the first module with the given id.
func FindModule(modules []Module, id uint32) (Module, bool) {
	return find(modules, func(m *Module) bool { return m.ID == id })
}

// FindEvent returns the first event with the given id.
func FindEvent(events []Event, id uint32) (Event, bool) {
	return find(events, func(e *Event) bool { return e.ID == id })
}

// FindFunction returns the first function entry with the given id.
func FindFunction(functions []FunctionEntry, id uint32) (FunctionEntry, bool) {
	return find(functions, func(f *FunctionEntry) bool { return f.ID == id })
}

// FindEnum returns the first enum entry whose value equals value.
func FindEnum(entries []EnumEntry, value uint32) (EnumEntry, bool) {
	return find(entries, func(e *EnumEntry) bool { return e.Value == value })
}

// ModuleByID returns the module with the given id, or UnknownModule(id).
// The bool reports whether the table defined the module.
func ModuleByID(modules []Module, id uint32) (Module, bool) {
	if m, ok := FindModule(modules, id); ok {
		return m, true
	}
	return UnknownModule(id), false
}

// LocalEventByID looks the event up in the module's own table, falling back
// to UnknownLocalEvent(id).
func LocalEventByID(module Module, id uint32) (LocalEvent, bool) {
	if e, ok := FindEvent(module.LocalEvents, id); ok {
		return e, true
	}
	return UnknownLocalEvent(id), false
}

// GlobalEventByID returns the global event with the given id, or
// UnknownGlobalEvent(id).
func GlobalEventByID(events []GlobalEvent, id uint32) (GlobalEvent, bool) {
	if e, ok := FindEvent(events, id); ok {
		return e, true
	}
	return UnknownGlobalEvent(id), false
}

// FunctionByID returns the function with the given id, or UnknownFunction(id).
func FunctionByID(functions []FunctionEntry, id uint32) (FunctionEntry, bool) {
	if f, ok := FindFunction(functions, id); ok {
		return f, true
	}
	return UnknownFunction(id), false
}

// EnumText returns the label for value, or "Unknown enum (<value>)".
func EnumText(entries []EnumEntry, value uint32) string {
	if e, ok := FindEnum(entries, value); ok {
		return e.Text
	}
	return UnknownEnumText(value)
}
