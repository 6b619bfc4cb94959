package evlog

import (
	"log/slog"
	"strconv"

	"github.com/tracedecode/evlog/eventcode"
	"github.com/tracedecode/evlog/internal/types"
	"github.com/tracedecode/evlog/meta"
)

// Decode decodes a single event code.
//
// Ids missing from the tables never fail: they resolve to placeholders such
// as "Unknown function (<id>)". Type tags other than 1-4 yield an
// *UnknownResult. The only error is an *UnhandledParamTypeError from an event
// definition whose ParamType is not "", "uint" or "enum".
func (d *Decoder) Decode(code uint32) (Result, error) {
	f := eventcode.Split(code)
	if !f.Type.Known() {
		return d.decodeUnknownType(code, f), nil
	}

	var res Result
	switch f.Type {
	case eventcode.TypeFunctionEnter, eventcode.TypeFunctionExit:
		res = d.decodeFunction(code, f)
	case eventcode.TypeLocalEvent:
		r, err := d.decodeLocal(code, f)
		if err != nil {
			return nil, err
		}
		res = r
	case eventcode.TypeGlobalEvent:
		r, err := d.decodeGlobal(code, f)
		if err != nil {
			return nil, err
		}
		res = r
	}

	d.traceDecoded(res)
	return res, nil
}

// decodeUnknownType handles the reserved type tags (0 and 5-15).
func (d *Decoder) decodeUnknownType(code uint32, f eventcode.Fields) *UnknownResult {
	d.log.Log(slog.LevelDebug, "unknown event type",
		types.Hex("code", code), slog.Int("type", int(f.Type)))
	res := &UnknownResult{Header: Header{
		Type:   f.Type,
		Code:   code,
		Module: meta.UnknownModule(0),
		Text:   "Unknown event type (" + strconv.FormatUint(uint64(code), 10) + ")",
	}}
	d.traceDecoded(res)
	return res
}

func (d *Decoder) traceDecoded(res Result) {
	if d.log.TraceEnabled() {
		h := res.Common()
		d.log.Trace("decoded event", types.Hex("code", h.Code),
			slog.String("type", h.Type.String()),
			slog.String("text", res.String()))
	}
}

func (d *Decoder) decodeFunction(code uint32, f eventcode.Fields) *FunctionResult {
	r := &FunctionResult{
		Header:     d.header(code, f),
		FunctionID: f.FunctionID,
		Function:   d.function(f.FunctionID),
	}
	if f.Type == eventcode.TypeFunctionEnter {
		r.Text = "Enter: " + r.Function.Name
	} else {
		r.Text = "Exit: " + r.Function.Name
	}
	return r
}

func (d *Decoder) decodeLocal(code uint32, f eventcode.Fields) (*LocalEventResult, error) {
	r := &LocalEventResult{
		Header:  d.header(code, f),
		EventID: f.EventID,
		Param:   f.Param,
	}
	var found bool
	if r.Event, found = meta.LocalEventByID(r.Module, f.EventID); !found {
		d.log.Log(slog.LevelDebug, "unknown local event",
			slog.String("module", r.Module.Name), slog.Uint64("event", uint64(f.EventID)))
	}

	text, err := d.render(r.Event, f.Param)
	if err != nil {
		return nil, err
	}
	r.Text = "Event: " + text
	return r, nil
}

func (d *Decoder) decodeGlobal(code uint32, f eventcode.Fields) (*GlobalEventResult, error) {
	r := &GlobalEventResult{
		Header:  d.header(code, f),
		EventID: f.EventID,
		Param:   f.Param,
	}
	var found bool
	if r.Event, found = meta.GlobalEventByID(d.globals, f.EventID); !found {
		d.log.Log(slog.LevelDebug, "unknown global event", slog.Uint64("event", uint64(f.EventID)))
	}

	text, err := d.render(r.Event, f.Param)
	if err != nil {
		return nil, err
	}
	r.Text = "Event: " + text
	return r, nil
}

// header resolves the module shared by all four known event types.
func (d *Decoder) header(code uint32, f eventcode.Fields) Header {
	m, ok := meta.ModuleByID(d.modules, f.ModuleID)
	if !ok {
		d.log.Log(slog.LevelDebug, "unknown module", slog.Uint64("module", uint64(f.ModuleID)))
	}
	return Header{Type: f.Type, Code: code, ModuleID: f.ModuleID, Module: m}
}

func (d *Decoder) function(id uint32) meta.FunctionEntry {
	fn, ok := meta.FunctionByID(d.functions, id)
	if !ok {
		d.log.Log(slog.LevelDebug, "unknown function", slog.Uint64("function", uint64(id)))
	}
	return fn
}

func (d *Decoder) render(e meta.Event, param uint32) (string, error) {
	text, err := RenderEventText(e, param)
	if err != nil {
		d.log.Log(slog.LevelDebug, "unhandled param type",
			slog.Uint64("event", uint64(e.ID)), slog.String("param_type", string(e.ParamType)))
		return "", err
	}
	if e.ParamType == meta.ParamEnum && d.log.Enabled(slog.LevelDebug) {
		if _, ok := meta.FindEnum(e.EnumValues, param); !ok {
			d.log.Log(slog.LevelDebug, "unknown enum value",
				slog.Uint64("event", uint64(e.ID)), slog.Uint64("value", uint64(param)))
		}
	}
	return text, nil
}

// RenderEventText renders an event definition and its parameter.
//
// The event text is returned unchanged when ParamType is ParamNone. ParamUint
// appends a space and the decimal parameter; ParamEnum appends a space and the
// matching EnumValues label, or "Unknown enum (<param>)". Any other ParamType
// returns an *UnhandledParamTypeError.
func RenderEventText(e Event, param uint32) (string, error) {
	switch e.ParamType {
	case meta.ParamNone:
		return e.Text, nil
	case meta.ParamUint:
		return e.Text + " " + strconv.FormatUint(uint64(param), 10), nil
	case meta.ParamEnum:
		return e.Text + " " + meta.EnumText(e.EnumValues, param), nil
	default:
		return "", &UnhandledParamTypeError{
			ParamType: e.ParamType,
			EventID:   e.ID,
			EventText: e.Text,
		}
	}
}
