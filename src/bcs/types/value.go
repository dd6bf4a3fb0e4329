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


package types

import (
	"github.com/erikcasson/aptos-bcs/src/x/bcs"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// StringTag is the type tag of 0x1::string::String.
var StringTag TypeTag = StructTag{
	Address: AccountAddress{AccountAddressLength - 1: 0x1},
	Module:  "string",
	Name:    "String",
}

// Value is a BCS element paired with the type tag that describes it. Used
// as an element, a value writes only its payload; Tagged writes the type
// tag first.
type Value struct {
	tag  TypeTag
	elem bcs.Element
}

// NewValue pairs an element with its type tag.
func NewValue(tag TypeTag, elem bcs.Element) Value {
	return Value{tag: tag, elem: elem}
}

// Bool returns a tagged bool.
func Bool(v bool) Value { return NewValue(BoolTag, bcs.Bool(v)) }

// U8 returns a tagged u8.
func U8(v uint8) Value { return NewValue(U8Tag, bcs.U8(v)) }

// U16 returns a tagged u16.
func U16(v uint16) Value { return NewValue(U16Tag, bcs.U16(v)) }

// U32 returns a tagged u32.
func U32(v uint32) Value { return NewValue(U32Tag, bcs.U32(v)) }

// U64 returns a tagged u64.
func U64(v uint64) Value { return NewValue(U64Tag, bcs.U64(v)) }

// U128 returns a tagged u128.
func U128(v uint128.Uint128) Value { return NewValue(U128Tag, bcs.U128(v)) }

// U256 returns a tagged u256. A nil v is encoded as zero.
func U256(v *uint256.Int) Value {
	var elem bcs.U256
	if v != nil {
		elem = bcs.U256(*v)
	}
	return NewValue(U256Tag, elem)
}

// Address returns a tagged account address.
func Address(v AccountAddress) Value { return NewValue(AddressTag, v) }

// String returns a tagged 0x1::string::String.
func String(v string) Value { return NewValue(StringTag, bcs.Str(v)) }

// Bytes returns a tagged vector<u8>.
func Bytes(v []byte) Value { return NewValue(NewVectorTag(U8Tag), bcs.Bytes(v)) }

// Vector returns a vector of values that all have the type elemTag.
func Vector(elemTag TypeTag, values ...Value) (Value, error) {
	if elemTag == nil {
		return Value{}, errors.Wrap(bcs.ErrNilElement, "vector element tag")
	}
	elems := make([]bcs.Element, 0, len(values))
	for i, v := range values {
		if !EqualTags(elemTag, v.tag) {
			return Value{}, errors.Wrapf(ErrTagMismatch,
				"element %d has type %s, expected %s", i, tagString(v.tag), elemTag)
		}
		elems = append(elems, v)
	}
	return NewValue(NewVectorTag(elemTag), bcs.NewSequence(elems...)), nil
}

// Tag returns the value's type tag.
func (v Value) Tag() TypeTag { return v.tag }

// Element returns the untagged element.
func (v Value) Element() bcs.Element { return v.elem }

// Serialize writes the value's payload.
func (v Value) Serialize(s bcs.Serializer) {
	if v.elem == nil {
		s.Fail(bcs.ErrNilElement)
		return
	}
	v.elem.Serialize(s)
}

// Framing returns the framing of the underlying element.
func (v Value) Framing() bcs.Framing {
	if v.elem == nil {
		return bcs.FramingInline
	}
	return v.elem.Framing()
}

// Tagged returns an element that writes the type tag and then the payload.
func (v Value) Tagged() bcs.Element { return taggedValue(v) }

type taggedValue Value

func (v taggedValue) Serialize(s bcs.Serializer) {
	serializeTag(s, v.tag)
	Value(v).Serialize(s)
}

func (v taggedValue) Framing() bcs.Framing { return Value(v).Framing() }
