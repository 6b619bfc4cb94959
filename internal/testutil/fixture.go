// Package testutil provides shared metadata fixtures and test helpers.
package testutil

import "github.com/tracedecode/evlog/meta"

// Module ids used by the fixture tables.
const (
	ModuleCore   = 2
	ModuleTimer  = 5
	ModuleBroken = 9
)

// Local event ids of the core module.
const (
	EventCoreState   = 1
	EventCoreRetries = 2
	EventCoreReset   = 3
)

// Local event ids of the broken module.
const (
	EventBrokenMask = 1
)

// Global event ids.
const (
	GlobalBoot    = 1
	GlobalChannel = 2
	GlobalPower   = 3
)

// Function ids.
const (
	FunctionInit    = 0x0201
	FunctionReceive = 0x0202
	FunctionLast    = 0x3FFFFF
)

// StateValues is the enum table of the core state event.
var StateValues = []meta.EnumEntry{
	{Value: 1, Text: "Idle"},
	{Value: 2, Text: "Busy"},
}

// Modules returns a fresh module table. The broken module defines an event
// with a param type the renderer does not handle.
func Modules() []meta.Module {
	return []meta.Module{
		{ID: ModuleCore, Name: "core", LocalEvents: []meta.LocalEvent{
			{ID: EventCoreState, Text: "state", ParamType: meta.ParamEnum, EnumValues: StateValues},
			{ID: EventCoreRetries, Text: "retries", ParamType: meta.ParamUint},
			{ID: EventCoreReset, Text: "reset"},
		}},
		{ID: ModuleTimer, Name: "timer"},
		{ID: ModuleBroken, Name: "broken", LocalEvents: []meta.LocalEvent{
			{ID: EventBrokenMask, Text: "mask", ParamType: meta.ParamType("bitmask")},
		}},
	}
}

// GlobalEvents returns a fresh global event table.
func GlobalEvents() []meta.GlobalEvent {
	return []meta.GlobalEvent{
		{ID: GlobalBoot, Text: "boot"},
		{ID: GlobalChannel, Text: "channel", ParamType: meta.ParamUint},
		{ID: GlobalPower, Text: "power", ParamType: meta.ParamEnum, EnumValues: []meta.EnumEntry{
			{Value: 0, Text: "Off"},
			{Value: 1, Text: "On"},
		}},
	}
}

// Functions returns a fresh function table.
func Functions() []meta.FunctionEntry {
	return []meta.FunctionEntry{
		{ID: FunctionInit, Name: "radio_init"},
		{ID: FunctionReceive, Name: "radio_receive"},
		{ID: FunctionLast, Name: "last_function"},
	}
}
