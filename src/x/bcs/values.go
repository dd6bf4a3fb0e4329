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


package bcs

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// Bool is a boolean element.
type Bool bool

// Serialize writes the boolean.
func (v Bool) Serialize(s Serializer) { s.WriteBool(bool(v)) }

// Framing returns FramingInline.
func (v Bool) Framing() Framing { return FramingInline }

// U8 is an unsigned 8-bit element.
type U8 uint8

// Serialize writes the byte.
func (v U8) Serialize(s Serializer) { s.WriteU8(uint8(v)) }

// Framing returns FramingInline.
func (v U8) Framing() Framing { return FramingInline }

// U16 is an unsigned 16-bit element.
type U16 uint16

// Serialize writes the value little-endian.
func (v U16) Serialize(s Serializer) { s.WriteU16(uint16(v)) }

// Framing returns FramingInline.
func (v U16) Framing() Framing { return FramingInline }

// U32 is an unsigned 32-bit element.
type U32 uint32

// Serialize writes the value little-endian.
func (v U32) Serialize(s Serializer) { s.WriteU32(uint32(v)) }

// Framing returns FramingInline.
func (v U32) Framing() Framing { return FramingInline }

// U64 is an unsigned 64-bit element.
type U64 uint64

// Serialize writes the value little-endian.
func (v U64) Serialize(s Serializer) { s.WriteU64(uint64(v)) }

// Framing returns FramingInline.
func (v U64) Framing() Framing { return FramingInline }

// U128 is an unsigned 128-bit element.
type U128 uint128.Uint128

// Serialize writes the value as 16 little-endian bytes.
func (v U128) Serialize(s Serializer) { s.WriteU128(uint128.Uint128(v)) }

// Framing returns FramingInline.
func (v U128) Framing() Framing { return FramingInline }

// String returns the decimal form of the value.
func (v U128) String() string { return uint128.Uint128(v).String() }

// U256 is an unsigned 256-bit element.
type U256 uint256.Int

// Serialize writes the value as 32 little-endian bytes.
func (v U256) Serialize(s Serializer) {
	x := uint256.Int(v)
	s.WriteU256(&x)
}

// Framing returns FramingInline.
func (v U256) Framing() Framing { return FramingInline }

// Uleb128 is a u32 written as a ULEB128 varint.
type Uleb128 uint32

// Serialize writes the varint.
func (v Uleb128) Serialize(s Serializer) { s.WriteUleb128(uint32(v)) }

// Framing returns FramingInline.
func (v Uleb128) Framing() Framing { return FramingInline }

// Str is a UTF-8 string element.
type Str string

// Serialize writes the length-prefixed UTF-8 bytes.
func (v Str) Serialize(s Serializer) { s.WriteString(string(v)) }

// Framing returns FramingInline.
func (v Str) Framing() Framing { return FramingInline }

// Bytes is a length-prefixed byte array element.
type Bytes []byte

// Serialize writes the length-prefixed bytes.
func (v Bytes) Serialize(s Serializer) { s.WriteBytes([]byte(v)) }

// Framing returns FramingInline.
func (v Bytes) Framing() Framing { return FramingInline }

// FixedBytes is a byte array whose length is known to the schema and so is
// written without a prefix.
type FixedBytes []byte

// Serialize writes the raw bytes.
func (v FixedBytes) Serialize(s Serializer) { s.WriteFixedBytes([]byte(v)) }

// Framing returns FramingInline.
func (v FixedBytes) Framing() Framing { return FramingInline }

// U128FromBig converts v to a u128, rejecting negative values and values
// wider than 128 bits.
func U128FromBig(v *big.Int) (uint128.Uint128, error) {
	if v == nil {
		return uint128.Uint128{}, errors.Wrap(ErrNilElement, "u128")
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return uint128.Uint128{}, errors.Wrapf(ErrU128OutOfRange, "value %s", v.String())
	}
	return uint128.FromBig(v), nil
}

// ParseU128 parses a decimal or 0x-prefixed hexadecimal u128.
func ParseU128(str string) (uint128.Uint128, error) {
	v, err := parseBig(str)
	if err != nil {
		return uint128.Uint128{}, err
	}
	return U128FromBig(v)
}

// U256FromBig converts v to a u256, rejecting negative values and values
// wider than 256 bits.
func U256FromBig(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return nil, errors.Wrap(ErrNilElement, "u256")
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, errors.Wrapf(ErrU256OutOfRange, "value %s", v.String())
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, errors.Wrapf(ErrU256OutOfRange, "value %s", v.String())
	}
	return out, nil
}

// ParseU256 parses a decimal or 0x-prefixed hexadecimal u256.
func ParseU256(str string) (*uint256.Int, error) {
	v, err := parseBig(str)
	if err != nil {
		return nil, err
	}
	return U256FromBig(v)
}

func parseBig(str string) (*big.Int, error) {
	var (
		digits = str
		base   = 10
	)
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		digits = str[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", str)
	}
	return v, nil
}
