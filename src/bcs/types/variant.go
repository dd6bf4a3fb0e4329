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


// Package types implements the Aptos type tags and tagged values that are
// built on top of the BCS serializer.
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when an account address cannot be parsed.
	ErrInvalidAddress = errors.New("types: invalid account address")

	// ErrInvalidIdentifier is returned for module or struct names that are
	// not Move identifiers.
	ErrInvalidIdentifier = errors.New("types: invalid identifier")

	// ErrInvalidTypeTag is returned when a type tag string cannot be parsed.
	ErrInvalidTypeTag = errors.New("types: invalid type tag")

	// ErrTagMismatch is returned when a vector element does not have the
	// vector's element type.
	ErrTagMismatch = errors.New("types: value does not match type tag")
)

// Variant is the discriminant written ahead of a type tag. The numbering is
// the canonical Aptos TypeTag table; it is not declaration order.
type Variant uint32

// Canonical type tag discriminants.
const (
	VariantBool    Variant = 0
	VariantU8      Variant = 1
	VariantU64     Variant = 2
	VariantU128    Variant = 3
	VariantAddress Variant = 4
	VariantSigner  Variant = 5
	VariantVector  Variant = 6
	VariantStruct  Variant = 7
	VariantU16     Variant = 8
	VariantU32     Variant = 9
	VariantU256    Variant = 10
)

var variantNames = map[Variant]string{
	VariantBool:    "bool",
	VariantU8:      "u8",
	VariantU64:     "u64",
	VariantU128:    "u128",
	VariantAddress: "address",
	VariantSigner:  "signer",
	VariantVector:  "vector",
	VariantStruct:  "struct",
	VariantU16:     "u16",
	VariantU32:     "u32",
	VariantU256:    "u256",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", uint32(v))
}
