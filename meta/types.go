// Package meta defines the metadata tables consumed by the event decoder:
// modules, their local events, global events and function names.
package meta

import "fmt"

// ParamType selects how an event parameter is rendered.
// The zero value means the event carries no parameter.
type ParamType string

const (
	ParamNone ParamType = ""     // no parameter is rendered
	ParamUint ParamType = "uint" // decimal unsigned integer
	ParamEnum ParamType = "enum" // label looked up in Event.EnumValues
)

// Known reports whether p is one of the param types the decoder can render.
func (p ParamType) Known() bool {
	switch p {
	case ParamNone, ParamUint, ParamEnum:
		return true
	default:
		return false
	}
}

func (p ParamType) String() string {
	if p == ParamNone {
		return "none"
	}
	return string(p)
}

// EnumEntry maps a numeric parameter value to a display label.
type EnumEntry struct {
	Value uint32
	Text  string
}

// Event is an event definition. Local events are scoped to their owning
// module; global events come from a single table shared by all modules.
type Event struct {
	ID        uint32
	Text      string
	ParamType ParamType
	// EnumValues is consulted only when ParamType is ParamEnum.
	EnumValues []EnumEntry
}

// LocalEvent is an event defined inside a Module.
type LocalEvent = Event

// GlobalEvent is an event from the global event table.
type GlobalEvent = Event

// Module is a firmware subsystem and the local events it defines.
type Module struct {
	ID          uint32
	Name        string
	LocalEvents []LocalEvent
}

// FunctionEntry maps a function identifier to its display name.
type FunctionEntry struct {
	ID   uint32
	Name string
}

// UnknownModule returns the placeholder used when no module has the given id.
func UnknownModule(id uint32) Module {
	return Module{ID: id, Name: fmt.Sprintf("Unknown (%d)", id)}
}

// UnknownLocalEvent returns the placeholder for a missing local event.
func UnknownLocalEvent(id uint32) LocalEvent {
	return LocalEvent{ID: id, Text: fmt.Sprintf("Unknown local event (%d)", id)}
}

// UnknownGlobalEvent returns the placeholder for a missing global event.
func UnknownGlobalEvent(id uint32) GlobalEvent {
	return GlobalEvent{ID: id, Text: fmt.Sprintf("Unknown global event (%d)", id)}
}

// UnknownFunction returns the placeholder for a missing function id.
func UnknownFunction(id uint32) FunctionEntry {
	return FunctionEntry{ID: id, Name: fmt.Sprintf("Unknown function (%d)", id)}
}

// UnknownEnumText is the label rendered for an enum value with no entry.
func UnknownEnumText(value uint32) string {
	return fmt.Sprintf("Unknown enum (%d)", value)
}
