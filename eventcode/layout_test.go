package eventcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{TypeFunctionEnter, "enter"},
		{TypeFunctionExit, "exit"},
		{TypeLocalEvent, "local"},
		{TypeGlobalEvent, "global"},
		{EventType(0), "EventType(0)"},
		{EventType(15), "EventType(15)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestEventTypeKnown(t *testing.T) {
	for v := 0; v <= 15; v++ {
		typ := EventType(v)
		assert.Equal(t, v >= 1 && v <= 4, typ.Known(), "type %d", v)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		want Fields
	}{
		{
			name: "enter with module 0",
			code: 0x1000_0005,
			want: Fields{Type: TypeFunctionEnter, ModuleID: 0, FunctionID: 5, EventID: 0, Param: 5},
		},
		{
			name: "all ones",
			code: 0xFFFF_FFFF,
			want: Fields{Type: 15, ModuleID: 0x3F, FunctionID: 0x3FFFFF, EventID: 0x3F, Param: 0xFFFF},
		},
		{
			name: "local event",
			code: 3<<28 | 2<<22 | 7<<16 | 0x1234,
			want: Fields{Type: TypeLocalEvent, ModuleID: 2, FunctionID: 7<<16 | 0x1234, EventID: 7, Param: 0x1234},
		},
		{
			name: "type 8 sets top bit only",
			code: 0x8000_0000,
			want: Fields{Type: 8},
		},
		{
			name: "unknown type zero",
			code: 0x0ABC_DEF0,
			want: Fields{Type: 0, ModuleID: 0x2A, FunctionID: 0x3CDEF0, EventID: 0x3C, Param: 0xDEF0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.code))
		})
	}
}
