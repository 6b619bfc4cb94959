// Package ringlog recovers raw words from a firmware trace ring buffer.
//
// The firmware writes each word at buf[ptr] and advances ptr with
// (ptr + 1) & (len(buf) - 1), so the buffer length is always a power of two
// and the oldest entry sits at the write pointer once the buffer has wrapped.
// Unroll only restores the order; words in a firmware-specific format still
// need converting (see nrf802154.FromFirmware) before decoding.
package ringlog

import (
	"errors"
	"fmt"
	"math/bits"
)

// DefaultCapacity is the firmware's default buffer length.
const DefaultCapacity = 1024

var (
	// ErrBufferSize is returned for a buffer whose length is not a power of two.
	ErrBufferSize = errors.New("ring buffer length must be a non-zero power of two")
	// ErrWritePointer is returned for a write pointer outside the buffer.
	ErrWritePointer = errors.New("write pointer out of range")
)

// Unroll returns the entries of buf oldest first.
//
// Slots holding zero were never written (neither a decoder event code nor a
// firmware log word is ever zero) and are dropped, which also handles a buffer that
// has not wrapped yet.
func Unroll(buf []uint32, writePtr uint32) ([]uint32, error) {
	n := len(buf)
	if n == 0 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrBufferSize, n)
	}
	if uint64(writePtr) >= uint64(n) {
		return nil, fmt.Errorf("%w: %d >= %d", ErrWritePointer, writePtr, n)
	}

	out := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		code := buf[(int(writePtr)+i)&(n-1)]
		if code != 0 {
			out = append(out, code)
		}
	}
	return out, nil
}

// Next returns the write pointer that follows ptr in a buffer of length n.
// n must be a power of two.
func Next(ptr uint32, n int) uint32 {
	return (ptr + 1) & uint32(n-1)
}

// Buffer is an in-memory model of the firmware ring buffer. It is useful for
// simulating firmware output in tests. A Buffer is not safe for concurrent
// use.
type Buffer struct {
	words []uint32
	ptr   uint32
}

// NewBuffer returns an empty buffer of the given capacity.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 || bits.OnesCount(uint(capacity)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrBufferSize, capacity)
	}
	return &Buffer{words: make([]uint32, capacity)}, nil
}

// Log stores code at the write pointer and advances it.
func (b *Buffer) Log(code uint32) {
	b.words[b.ptr] = code
	b.ptr = Next(b.ptr, len(b.words))
}

// Snapshot returns a copy of the raw words and the current write pointer, in
// the form a debugger would read them from the target.
func (b *Buffer) Snapshot() ([]uint32, uint32) {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return words, b.ptr
}

// Entries returns the logged codes oldest first.
func (b *Buffer) Entries() []uint32 {
	out, _ := Unroll(b.words, b.ptr)
	return out
}
