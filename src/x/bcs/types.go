// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


// Package bcs implements Binary Canonical Serialization, the deterministic
// binary encoding used for Aptos transactions and resources.
//
// BCS is not self-describing: both ends know the schema ahead of time, so
// a value's bytes carry no type information beyond what the schema itself
// prescribes. All multi-byte integers are little-endian and all lengths are
// ULEB128 encoded.
package bcs

import (
	"github.com/erikcasson/aptos-bcs/src/x/instrument"
	"github.com/erikcasson/aptos-bcs/src/x/pool"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Framing describes how an element is embedded when it appears inside a
// sequence or a map.
type Framing int

const (
	// FramingInline appends the element's own encoding directly. Scalars,
	// strings, byte arrays and type tags are self-delimiting and use it.
	FramingInline Framing = iota

	// FramingLengthPrefixed encodes the element into scratch space first and
	// emits the result as a length-prefixed byte blob. Composites use it.
	FramingLengthPrefixed
)

func (f Framing) String() string {
	switch f {
	case FramingInline:
		return "inline"
	case FramingLengthPrefixed:
		return "length-prefixed"
	}
	return "unknown"
}

// Element is a value that knows how to drive a Serializer for its own shape.
type Element interface {
	// Serialize appends the element's encoding to the serializer.
	Serialize(s Serializer)

	// Framing returns how the element is embedded inside composites.
	Framing() Framing
}

// Serializer accumulates an append-only BCS buffer. A serializer is owned by
// a single encoding session and is not safe for concurrent use.
//
// Errors are sticky: the first failure is recorded, nothing of the rejected
// value is written, and every later write is a no-op.
type Serializer interface {
	// WriteBool writes 0x01 for true and 0x00 for false.
	WriteBool(v bool)

	// WriteU8 writes a single byte.
	WriteU8(v uint8)

	// WriteU16 writes 2 little-endian bytes.
	WriteU16(v uint16)

	// WriteU32 writes 4 little-endian bytes.
	WriteU32(v uint32)

	// WriteU64 writes 8 little-endian bytes.
	WriteU64(v uint64)

	// WriteU128 writes 16 little-endian bytes.
	WriteU128(v uint128.Uint128)

	// WriteU256 writes 32 little-endian bytes.
	WriteU256(v *uint256.Int)

	// WriteUleb128 writes v as an unsigned LEB128 varint.
	WriteUleb128(v uint32)

	// WriteBytes writes a ULEB128 length followed by the raw bytes.
	WriteBytes(v []byte)

	// WriteFixedBytes writes the raw bytes with no length prefix.
	WriteFixedBytes(v []byte)

	// WriteString writes the ULEB128 UTF-8 byte length followed by the
	// UTF-8 bytes. Invalid UTF-8 is rejected.
	WriteString(v string)

	// Serialize lets the element write itself to the serializer.
	Serialize(e Element)

	// SerializeElement writes the element according to its framing.
	SerializeElement(e Element)

	// Fail records err if no error has been recorded yet.
	Fail(err error)

	// Err returns the first error encountered, if any.
	Err() error

	// Len returns the number of bytes written.
	Len() int

	// Bytes returns a copy of the bytes written so far.
	Bytes() []byte

	// Reset clears the buffer and any recorded error.
	Reset()

	// Close releases the serializer's resources. The serializer must not be
	// used after Close.
	Close()
}

// SerializerAlloc allocates a serializer.
type SerializerAlloc func() Serializer

// SerializerPool is a pool of serializers.
type SerializerPool interface {
	// Init initializes the pool.
	Init(alloc SerializerAlloc)

	// Get returns a serializer from the pool.
	Get() Serializer

	// Put puts a serializer back into the pool.
	Put(s Serializer)
}

// Options provide options for serializers.
type Options interface {
	// SetInitialCapacity sets the capacity requested for a new buffer.
	SetInitialCapacity(value int) Options

	// InitialCapacity returns the capacity requested for a new buffer.
	InitialCapacity() int

	// SetBytesPool sets the pool buffers are drawn from, nil to allocate.
	SetBytesPool(value pool.BytesPool) Options

	// BytesPool returns the pool buffers are drawn from.
	BytesPool() pool.BytesPool

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options

	// Validate validates the options.
	Validate() error
}
