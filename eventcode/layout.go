// Package eventcode describes the bit layout of a packed 32-bit event code.
//
// # Layout
//
//	bits 31-28  event type
//	bits 27-22  module id
//	bits 21-0   function id            (function enter/exit)
//	bits 21-16  event id               (local/global event)
//	bits 15-0   event parameter        (local/global event)
//
// All extraction uses unsigned shifts, so the top bit of the type field never
// sign-extends into the other fields.
package eventcode

import "fmt"

// EventType is the 4-bit tag in the top nibble of an event code.
type EventType uint8

const (
	TypeFunctionEnter EventType = 1
	TypeFunctionExit  EventType = 2
	TypeLocalEvent    EventType = 3
	TypeGlobalEvent   EventType = 4
)

func (t EventType) String() string {
	switch t {
	case TypeFunctionEnter:
		return "enter"
	case TypeFunctionExit:
		return "exit"
	case TypeLocalEvent:
		return "local"
	case TypeGlobalEvent:
		return "global"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Known reports whether t is one of the four recognised tags.
func (t EventType) Known() bool {
	return t >= TypeFunctionEnter && t <= TypeGlobalEvent
}

// Field positions and widths.
const (
	TypeShift = 28
	TypeMask  = 0xF

	ModuleShift = 22
	ModuleMask  = 0x3F

	FunctionShift = 0
	FunctionMask  = 0x3FFFFF

	EventShift = 16
	EventMask  = 0x3F

	ParamShift = 0
	ParamMask  = 0xFFFF
)

// Fields holds every field of an event code. Which of them are meaningful
// depends on Type: FunctionID for enter/exit, EventID and Param for events.
type Fields struct {
	Type       EventType
	ModuleID   uint32
	FunctionID uint32
	EventID    uint32
	Param      uint32
}

// Split extracts all fields from code.
func Split(code uint32) Fields {
	return Fields{
		Type:       EventType((code >> TypeShift) & TypeMask),
		ModuleID:   (code >> ModuleShift) & ModuleMask,
		FunctionID: (code >> FunctionShift) & FunctionMask,
		EventID:    (code >> EventShift) & EventMask,
		Param:      (code >> ParamShift) & ParamMask,
	}
}
