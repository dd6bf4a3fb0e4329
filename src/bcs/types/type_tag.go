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
	"strings"

	"github.com/erikcasson/aptos-bcs/src/x/bcs"
)

// TypeTag describes a Move type. Serializing a type tag writes its variant
// as ULEB128 followed by any payload, so tags are self-delimiting and
// concatenate directly inside a TagSequence.
type TypeTag interface {
	bcs.Element

	// Variant returns the tag's discriminant.
	Variant() Variant

	// String returns the Move source form of the type.
	String() string
}

type primitiveTag Variant

// Primitive type tags.
var (
	BoolTag    TypeTag = primitiveTag(VariantBool)
	U8Tag      TypeTag = primitiveTag(VariantU8)
	U16Tag     TypeTag = primitiveTag(VariantU16)
	U32Tag     TypeTag = primitiveTag(VariantU32)
	U64Tag     TypeTag = primitiveTag(VariantU64)
	U128Tag    TypeTag = primitiveTag(VariantU128)
	U256Tag    TypeTag = primitiveTag(VariantU256)
	AddressTag TypeTag = primitiveTag(VariantAddress)
	SignerTag  TypeTag = primitiveTag(VariantSigner)
)

func (t primitiveTag) Serialize(s bcs.Serializer) { s.WriteUleb128(uint32(t)) }
func (t primitiveTag) Framing() bcs.Framing       { return bcs.FramingInline }
func (t primitiveTag) Variant() Variant           { return Variant(t) }
func (t primitiveTag) String() string             { return Variant(t).String() }

// VectorTag is the type tag of vector<Elem>.
type VectorTag struct {
	Elem TypeTag
}

// NewVectorTag returns the tag of a vector of elem.
func NewVectorTag(elem TypeTag) VectorTag {
	return VectorTag{Elem: elem}
}

// Serialize writes the vector variant followed by the element tag.
func (t VectorTag) Serialize(s bcs.Serializer) {
	s.WriteUleb128(uint32(VariantVector))
	serializeTag(s, t.Elem)
}

// Framing returns bcs.FramingInline.
func (t VectorTag) Framing() bcs.Framing { return bcs.FramingInline }

// Variant returns VariantVector.
func (t VectorTag) Variant() Variant { return VariantVector }

func (t VectorTag) String() string {
	return "vector<" + tagString(t.Elem) + ">"
}

// TagSequence is a list of type tags, encoded as a ULEB128 count followed by
// each tag inline.
type TagSequence []TypeTag

// Serialize writes the count then each tag with its own discriminant.
func (q TagSequence) Serialize(s bcs.Serializer) {
	bcs.WriteLength(s, len(q))
	for _, tag := range q {
		serializeTag(s, tag)
	}
}

// Framing returns bcs.FramingLengthPrefixed.
func (q TagSequence) Framing() bcs.Framing { return bcs.FramingLengthPrefixed }

func (q TagSequence) String() string {
	parts := make([]string, 0, len(q))
	for _, tag := range q {
		parts = append(parts, tagString(tag))
	}
	return strings.Join(parts, ", ")
}

// EqualTags reports whether two type tags describe the same type.
func EqualTags(a, b TypeTag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Variant() == b.Variant() && a.String() == b.String()
}

func serializeTag(s bcs.Serializer, tag TypeTag) {
	if tag == nil {
		s.Fail(bcs.ErrNilElement)
		return
	}
	tag.Serialize(s)
}

func tagString(tag TypeTag) string {
	if tag == nil {
		return "<nil>"
	}
	return tag.String()
}
