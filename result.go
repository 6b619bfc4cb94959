package evlog

import (
	"github.com/tracedecode/evlog/eventcode"
	"github.com/tracedecode/evlog/meta"
)

// Result is the decoded form of one event code. The concrete type depends on
// the event type:
//
//	TypeFunctionEnter, TypeFunctionExit  *FunctionResult
//	TypeLocalEvent                       *LocalEventResult
//	TypeGlobalEvent                      *GlobalEventResult
//	anything else                        *UnknownResult
type Result interface {
	// Common returns the fields every variant carries.
	Common() *Header
	// String returns the rendered text.
	String() string

	isResult()
}

// Header holds the fields shared by all results.
type Header struct {
	Type     EventType
	Code     uint32
	ModuleID uint32
	// Module is the resolved module, or a placeholder named "Unknown (<id>)".
	Module meta.Module
	Text   string
}

// Common returns h.
func (h *Header) Common() *Header { return h }

func (h *Header) String() string { return h.Text }

func (h *Header) isResult() {}

// FunctionResult is a function entry or exit trace.
type FunctionResult struct {
	Header
	FunctionID uint32
	Function   meta.FunctionEntry
}

// Enter reports whether this is a function entry (as opposed to exit).
func (r *FunctionResult) Enter() bool { return r.Type == eventcode.TypeFunctionEnter }

// LocalEventResult is an event looked up in its module's local event table.
type LocalEventResult struct {
	Header
	EventID uint32
	Event   meta.LocalEvent
	Param   uint32
}

// GlobalEventResult is an event looked up in the global event table.
type GlobalEventResult struct {
	Header
	EventID uint32
	Event   meta.GlobalEvent
	Param   uint32
}

// UnknownResult is an event code with an unrecognised type tag. Its module is
// always the placeholder for id 0.
type UnknownResult struct {
	Header
}
