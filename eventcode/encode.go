package eventcode

import (
	"errors"
	"fmt"
)

// ErrFieldRange is matched by every *FieldError.
var ErrFieldRange = errors.New("event code field out of range")

// FieldError reports a value that does not fit its bit field.
type FieldError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %d exceeds maximum %d", e.Field, e.Value, e.Max)
}

func (e *FieldError) Unwrap() error { return ErrFieldRange }

func checkField(name string, v, mask uint32) error {
	if v > mask {
		return &FieldError{Field: name, Value: v, Max: mask}
	}
	return nil
}

func header(t EventType, module uint32) (uint32, error) {
	if err := checkField("module id", module, ModuleMask); err != nil {
		return 0, err
	}
	return uint32(t)<<TypeShift | module<<ModuleShift, nil
}

func encodeFunction(t EventType, module, function uint32) (uint32, error) {
	h, err := header(t, module)
	if err != nil {
		return 0, err
	}
	if err := checkField("function id", function, FunctionMask); err != nil {
		return 0, err
	}
	return h | function<<FunctionShift, nil
}

func encodeEvent(t EventType, module, event, param uint32) (uint32, error) {
	h, err := header(t, module)
	if err != nil {
		return 0, err
	}
	if err := checkField("event id", event, EventMask); err != nil {
		return 0, err
	}
	if err := checkField("event parameter", param, ParamMask); err != nil {
		return 0, err
	}
	return h | event<<EventShift | param<<ParamShift, nil
}

// EncodeFunctionEnter packs a function entry trace.
func EncodeFunctionEnter(module, function uint32) (uint32, error) {
	return encodeFunction(TypeFunctionEnter, module, function)
}

// EncodeFunctionExit packs a function exit trace.
func EncodeFunctionExit(module, function uint32) (uint32, error) {
	return encodeFunction(TypeFunctionExit, module, function)
}

// EncodeLocalEvent packs an event from the module's own event table.
func EncodeLocalEvent(module, event, param uint32) (uint32, error) {
	return encodeEvent(TypeLocalEvent, module, event, param)
}

// EncodeGlobalEvent packs an event from the global event table. The module
// id only records which subsystem emitted it.
func EncodeGlobalEvent(module, event, param uint32) (uint32, error) {
	return encodeEvent(TypeGlobalEvent, module, event, param)
}
