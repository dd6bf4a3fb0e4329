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
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Deserializer mirrors the Serializer's primitive catalogue for reading.
// Decoding is not supported: every read returns ErrNotSupported rather than
// guessing at data.
type Deserializer interface {
	ReadBool() (bool, error)
	ReadU8() (uint8, error)
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	ReadU64() (uint64, error)
	ReadU128() (uint128.Uint128, error)
	ReadU256() (*uint256.Int, error)
	ReadUleb128() (uint32, error)
	ReadBytes() ([]byte, error)
	ReadFixedBytes(n int) ([]byte, error)
	ReadString() (string, error)
	Remaining() int
}

type deserializer struct {
	data []byte
}

// NewDeserializer returns a Deserializer over data.
func NewDeserializer(data []byte) Deserializer {
	return &deserializer{data: data}
}

// Unmarshal is not supported and always returns ErrNotSupported.
func Unmarshal(data []byte, e Element) error {
	return ErrNotSupported
}

func (d *deserializer) ReadBool() (bool, error)              { return false, ErrNotSupported }
func (d *deserializer) ReadU8() (uint8, error)               { return 0, ErrNotSupported }
func (d *deserializer) ReadU16() (uint16, error)             { return 0, ErrNotSupported }
func (d *deserializer) ReadU32() (uint32, error)             { return 0, ErrNotSupported }
func (d *deserializer) ReadU64() (uint64, error)             { return 0, ErrNotSupported }
func (d *deserializer) ReadU128() (uint128.Uint128, error)   { return uint128.Uint128{}, ErrNotSupported }
func (d *deserializer) ReadU256() (*uint256.Int, error)      { return nil, ErrNotSupported }
func (d *deserializer) ReadUleb128() (uint32, error)         { return 0, ErrNotSupported }
func (d *deserializer) ReadBytes() ([]byte, error)           { return nil, ErrNotSupported }
func (d *deserializer) ReadFixedBytes(n int) ([]byte, error) { return nil, ErrNotSupported }
func (d *deserializer) ReadString() (string, error)          { return "", ErrNotSupported }
func (d *deserializer) Remaining() int                       { return len(d.data) }
