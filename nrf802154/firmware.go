package nrf802154

import (
	"errors"
	"fmt"

	"github.com/tracedecode/evlog/eventcode"
)

// Trace codes the driver's nrf_802154_log macro stores in the low half of a
// word. Any other low half is a global event id.
const (
	TraceEnter = 0x0001
	TraceExit  = 0x0002
)

// ErrFirmwareWord is returned for a word whose low half is neither a trace
// code nor a global event id that fits the decoder layout.
var ErrFirmwareWord = errors.New("unsupported firmware log word")

// FirmwareWord packs a code and argument the way the driver's log macro
// does: code in bits 15-0, argument in bits 31-16.
func FirmwareWord(code, arg uint16) uint32 {
	return uint32(code) | uint32(arg)<<16
}

// FromFirmware converts a word written by the driver's log macro into an
// event code for evlog.Decoder.
//
// The macro stores no module id, so module is recorded in the converted
// code as given. Trace codes become function enter/exit events whose
// function id is the argument; every other code becomes a global event whose
// parameter is the argument.
func FromFirmware(word, module uint32) (uint32, error) {
	code := word & 0xFFFF
	arg := word >> 16

	switch code {
	case TraceEnter:
		return eventcode.EncodeFunctionEnter(module, arg)
	case TraceExit:
		return eventcode.EncodeFunctionExit(module, arg)
	}
	if code == 0 || code > eventcode.EventMask {
		return 0, fmt.Errorf("%w: 0x%08X", ErrFirmwareWord, word)
	}
	return eventcode.EncodeGlobalEvent(module, code, arg)
}

// FromFirmwareWords converts words in order, stopping at the first word that
// cannot be converted.
func FromFirmwareWords(words []uint32, module uint32) ([]uint32, error) {
	out := make([]uint32, 0, len(words))
	for i, w := range words {
		code, err := FromFirmware(w, module)
		if err != nil {
			return out, fmt.Errorf("word %d: %w", i, err)
		}
		out = append(out, code)
	}
	return out, nil
}
