// Package evlog decodes packed 32-bit firmware trace event codes into
// structured, human-readable results.
//
// An event code carries a 4-bit type tag, a 6-bit module id and a
// type-specific payload (a function id, or an event id plus a 16-bit
// parameter). The Decoder resolves the ids against caller-supplied metadata
// tables and renders the parameter, falling back to "Unknown ..."
// placeholders for ids the tables do not define.
package evlog

import (
	"github.com/tracedecode/evlog/eventcode"
	"github.com/tracedecode/evlog/meta"
)

// Type aliases for the public API. The table types live in meta and the bit
// layout in eventcode.

// Module is a firmware subsystem and its local events.
type Module = meta.Module

// Event is a local or global event definition.
type Event = meta.Event

// LocalEvent is an event scoped to a Module.
type LocalEvent = meta.LocalEvent

// GlobalEvent is an event from the global table.
type GlobalEvent = meta.GlobalEvent

// EnumEntry maps a parameter value to a label.
type EnumEntry = meta.EnumEntry

// FunctionEntry maps a function id to a name.
type FunctionEntry = meta.FunctionEntry

// ParamType selects how an event parameter is rendered.
type ParamType = meta.ParamType

// Param types.
const (
	ParamNone = meta.ParamNone
	ParamUint = meta.ParamUint
	ParamEnum = meta.ParamEnum
)

// EventType is the 4-bit tag of an event code.
type EventType = eventcode.EventType

// Event type tags.
const (
	TypeFunctionEnter = eventcode.TypeFunctionEnter
	TypeFunctionExit  = eventcode.TypeFunctionExit
	TypeLocalEvent    = eventcode.TypeLocalEvent
	TypeGlobalEvent   = eventcode.TypeGlobalEvent
)

// Diagnostic is an issue found in the metadata tables.
type Diagnostic = meta.Diagnostic

// CheckConfig filters table diagnostics.
type CheckConfig = meta.CheckConfig

// DefaultCheckConfig reports every diagnostic.
var DefaultCheckConfig = meta.DefaultCheckConfig
