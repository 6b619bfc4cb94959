package evlog

import (
	"errors"
	"fmt"

	"github.com/tracedecode/evlog/meta"
)

// ErrUnhandledParamType is matched by every *UnhandledParamTypeError.
var ErrUnhandledParamType = errors.New("unhandled event param type")

// UnhandledParamTypeError reports an event definition whose ParamType the
// renderer does not know. It indicates broken metadata, not a bad event code:
// rendering it anyway would mis-report the parameter.
type UnhandledParamTypeError struct {
	ParamType meta.ParamType
	EventID   uint32
	EventText string
}

func (e *UnhandledParamTypeError) Error() string {
	return fmt.Sprintf("event %d (%q): unhandled param type %q", e.EventID, e.EventText, string(e.ParamType))
}

func (e *UnhandledParamTypeError) Unwrap() error { return ErrUnhandledParamType }

// EntryError wraps a decode failure with the position of the event code in
// the input passed to DecodeAll.
type EntryError struct {
	Index int
	Code  uint32
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (0x%08X): %v", e.Index, e.Code, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// ErrorPolicy selects what DecodeAll does with an entry that fails to decode.
type ErrorPolicy int

const (
	// AbortOnError stops at the first failing entry.
	AbortOnError ErrorPolicy = iota
	// SkipOnError omits failing entries and reports them all at the end.
	SkipOnError
)

func (p ErrorPolicy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipOnError:
		return "skip"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}
