package evlog

import (
	"testing"

	"github.com/tracedecode/evlog/eventcode"
	"github.com/tracedecode/evlog/internal/testutil"
)

func BenchmarkDecodeLocalEnum(b *testing.B) {
	d := newTestDecoder()
	code := mustEncode(eventcode.EncodeLocalEvent(testutil.ModuleCore, testutil.EventCoreState, 2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(code); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

func BenchmarkDecodeUnknownFunction(b *testing.B) {
	d := newTestDecoder()
	code := mustEncode(eventcode.EncodeFunctionEnter(40, 0x1234))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(code); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

func BenchmarkDecodeAll(b *testing.B) {
	d := newTestDecoder()
	codes := make([]uint32, 0, 1024)
	for i := 0; i < 1024; i++ {
		codes = append(codes, mustEncode(eventcode.EncodeGlobalEvent(testutil.ModuleTimer, testutil.GlobalChannel, uint32(i))))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.DecodeAll(codes); err != nil {
			b.Fatalf("DecodeAll failed: %v", err)
		}
	}
}
