// Package nrf802154 provides the trace metadata of the nRF 802.15.4 radio
// driver: its module ids, global events and traced functions.
//
// The driver's log macro does not write evlog event codes. It stores
// code | arg<<16, where code is TraceEnter, TraceExit or a global event id.
// FromFirmware converts such words to the layout Decoder expects:
//
//	raw, _ := ringlog.Unroll(words, writePtr)
//	codes, _ := nrf802154.FromFirmwareWords(raw, nrf802154.ModuleCore)
//	results, err := nrf802154.NewDecoder().DecodeAll(codes)
package nrf802154

import (
	"github.com/tracedecode/evlog"
	"github.com/tracedecode/evlog/meta"
)

// Module ids. RAAL is shared by the alternative RAAL implementations
// (single PHY, SoftDevice, simulator).
const (
	ModuleApplication     = 1
	ModuleCore            = 2
	ModuleRSCH            = 3
	ModuleCriticalSection = 4
	ModuleTimerCoord      = 5
	ModuleTRX             = 6
	ModuleTimerSched      = 7
	ModuleCSMACA          = 8
	ModuleDelayedTRX      = 9
	ModuleAckTimeout      = 10
	ModuleRAAL            = 11
)

// Global event ids.
const (
	EventSetState              = 0x05
	EventRadioReset            = 0x06
	EventTimeslotRequest       = 0x07
	EventTimeslotRequestResult = 0x08
)

// Function ids. 0x0300-0x047F is reserved for RAAL.
const (
	FunctionAutoAckAbort    = 0x0201
	FunctionTimeslotStarted = 0x0202
	FunctionTimeslotEnded   = 0x0203
	FunctionCritSectEnter   = 0x0204
	FunctionCritSectExit    = 0x0205

	FunctionRAALCritSectEnter   = 0x0301
	FunctionRAALCritSectExit    = 0x0302
	FunctionRAALContinuousEnter = 0x0303
	FunctionRAALContinuousExit  = 0x0304

	FunctionRAALSigHandler            = 0x0400
	FunctionRAALSigEventStart         = 0x0401
	FunctionRAALSigEventMargin        = 0x0402
	FunctionRAALSigEventExtend        = 0x0403
	FunctionRAALSigEventEnded         = 0x0404
	FunctionRAALSigEventRadio         = 0x0405
	FunctionRAALSigEventExtendSuccess = 0x0406
	FunctionRAALSigEventExtendFail    = 0x0407
	FunctionRAALEvtBlocked            = 0x0408
	FunctionRAALEvtSessionIdle        = 0x0409
	FunctionRAALEvtHFClkReady         = 0x040A
	FunctionRAALSigEventMarginMove    = 0x040B
)

// RadioStates labels the parameter of EventSetState.
var RadioStates = []meta.EnumEntry{
	{Value: 0, Text: "SLEEP"},
	{Value: 1, Text: "FALLING_ASLEEP"},
	{Value: 2, Text: "RX"},
	{Value: 3, Text: "TX_ACK"},
	{Value: 4, Text: "CCA_TX"},
	{Value: 5, Text: "TX"},
	{Value: 6, Text: "RX_ACK"},
	{Value: 7, Text: "ED"},
	{Value: 8, Text: "CCA"},
	{Value: 9, Text: "CONTINUOUS_CARRIER"},
}

// Modules returns the driver's module table. No module defines local events.
func Modules() []meta.Module {
	return []meta.Module{
		{ID: ModuleApplication, Name: "application"},
		{ID: ModuleCore, Name: "core"},
		{ID: ModuleRSCH, Name: "rsch"},
		{ID: ModuleCriticalSection, Name: "critical_section"},
		{ID: ModuleTimerCoord, Name: "timer_coord"},
		{ID: ModuleTRX, Name: "trx"},
		{ID: ModuleTimerSched, Name: "timer_sched"},
		{ID: ModuleCSMACA, Name: "csma_ca"},
		{ID: ModuleDelayedTRX, Name: "delayed_trx"},
		{ID: ModuleAckTimeout, Name: "ack_timeout"},
		{ID: ModuleRAAL, Name: "raal"},
	}
}

// GlobalEvents returns the driver's global event table.
func GlobalEvents() []meta.GlobalEvent {
	return []meta.GlobalEvent{
		{ID: EventSetState, Text: "set_state", ParamType: meta.ParamEnum, EnumValues: RadioStates},
		{ID: EventRadioReset, Text: "radio_reset"},
		{ID: EventTimeslotRequest, Text: "timeslot_request", ParamType: meta.ParamUint},
		{ID: EventTimeslotRequestResult, Text: "timeslot_request_result", ParamType: meta.ParamUint},
	}
}

// Functions returns the driver's traced functions.
func Functions() []meta.FunctionEntry {
	return []meta.FunctionEntry{
		{ID: FunctionAutoAckAbort, Name: "auto_ack_abort"},
		{ID: FunctionTimeslotStarted, Name: "timeslot_started"},
		{ID: FunctionTimeslotEnded, Name: "timeslot_ended"},
		{ID: FunctionCritSectEnter, Name: "crit_sect_enter"},
		{ID: FunctionCritSectExit, Name: "crit_sect_exit"},

		{ID: FunctionRAALCritSectEnter, Name: "raal_crit_sect_enter"},
		{ID: FunctionRAALCritSectExit, Name: "raal_crit_sect_exit"},
		{ID: FunctionRAALContinuousEnter, Name: "raal_continuous_enter"},
		{ID: FunctionRAALContinuousExit, Name: "raal_continuous_exit"},

		{ID: FunctionRAALSigHandler, Name: "raal_sig_handler"},
		{ID: FunctionRAALSigEventStart, Name: "raal_sig_event_start"},
		{ID: FunctionRAALSigEventMargin, Name: "raal_sig_event_margin"},
		{ID: FunctionRAALSigEventExtend, Name: "raal_sig_event_extend"},
		{ID: FunctionRAALSigEventEnded, Name: "raal_sig_event_ended"},
		{ID: FunctionRAALSigEventRadio, Name: "raal_sig_event_radio"},
		{ID: FunctionRAALSigEventExtendSuccess, Name: "raal_sig_event_extend_success"},
		{ID: FunctionRAALSigEventExtendFail, Name: "raal_sig_event_extend_fail"},
		{ID: FunctionRAALEvtBlocked, Name: "raal_evt_blocked"},
		{ID: FunctionRAALEvtSessionIdle, Name: "raal_evt_session_idle"},
		{ID: FunctionRAALEvtHFClkReady, Name: "raal_evt_hfclk_ready"},
		{ID: FunctionRAALSigEventMarginMove, Name: "raal_sig_event_margin_move"},
	}
}

// NewDecoder returns a decoder over the driver's tables.
func NewDecoder(opts ...evlog.Option) *evlog.Decoder {
	return evlog.New(Modules(), GlobalEvents(), Functions(), opts...)
}
