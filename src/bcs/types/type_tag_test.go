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
	"errors"
	"testing"

	"github.com/erikcasson/aptos-bcs/src/x/bcs"
	xtest "github.com/erikcasson/aptos-bcs/src/x/test"

	"github.com/stretchr/testify/require"
)

func TestVariantNumbering(t *testing.T) {
	expected := map[Variant]uint32{
		VariantBool:    0,
		VariantU8:      1,
		VariantU64:     2,
		VariantU128:    3,
		VariantAddress: 4,
		VariantSigner:  5,
		VariantVector:  6,
		VariantStruct:  7,
		VariantU16:     8,
		VariantU32:     9,
		VariantU256:    10,
	}
	for v, n := range expected {
		require.Equal(t, n, uint32(v), v.String())
	}
}

func TestPrimitiveTags(t *testing.T) {
	tests := []struct {
		tag      TypeTag
		expected byte
		name     string
	}{
		{tag: BoolTag, expected: 0, name: "bool"},
		{tag: U8Tag, expected: 1, name: "u8"},
		{tag: U64Tag, expected: 2, name: "u64"},
		{tag: U128Tag, expected: 3, name: "u128"},
		{tag: AddressTag, expected: 4, name: "address"},
		{tag: SignerTag, expected: 5, name: "signer"},
		{tag: U16Tag, expected: 8, name: "u16"},
		{tag: U32Tag, expected: 9, name: "u32"},
		{tag: U256Tag, expected: 10, name: "u256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xtest.RequireBytesEqual(t, []byte{tt.expected}, marshal(t, tt.tag))
			require.Equal(t, tt.name, tt.tag.String())
			require.Equal(t, bcs.FramingInline, tt.tag.Framing())
		})
	}
}

func TestVectorTag(t *testing.T) {
	tag := NewVectorTag(U8Tag)
	xtest.RequireBytesEqual(t, []byte{6, 1}, marshal(t, tag))
	require.Equal(t, "vector<u8>", tag.String())

	nested := NewVectorTag(NewVectorTag(U64Tag))
	xtest.RequireBytesEqual(t, []byte{6, 6, 2}, marshal(t, nested))
	require.Equal(t, "vector<vector<u64>>", nested.String())
}

func TestVectorTagNilElement(t *testing.T) {
	_, err := bcs.Marshal(NewVectorTag(nil), testOptions)
	require.True(t, errors.Is(err, bcs.ErrNilElement))
}

func TestTagSequence(t *testing.T) {
	seq := TagSequence{BoolTag, U64Tag}
	xtest.RequireBytesEqual(t, []byte{2, 0, 2}, marshal(t, seq))
	require.Equal(t, "bool, u64", seq.String())
	require.Equal(t, bcs.FramingLengthPrefixed, seq.Framing())

	xtest.RequireBytesEqual(t, []byte{0}, marshal(t, TagSequence(nil)))
}

func TestStructTagSerialize(t *testing.T) {
	tag, err := NewStructTag(MustParseAccountAddress("0x1"), "aptos_coin", "AptosCoin")
	require.NoError(t, err)

	expected := concat(
		[]byte{7},
		addressBytes(0x1),
		[]byte{10}, []byte("aptos_coin"),
		[]byte{9}, []byte("AptosCoin"),
		[]byte{0},
	)
	xtest.RequireBytesEqual(t, expected, marshal(t, tag))
	require.Equal(t, "0x1::aptos_coin::AptosCoin", tag.String())
	require.Equal(t, VariantStruct, tag.Variant())
}

func TestStructTagWithTypeArgs(t *testing.T) {
	coin, err := NewStructTag(MustParseAccountAddress("0x1"), "aptos_coin", "AptosCoin")
	require.NoError(t, err)
	store, err := NewStructTag(MustParseAccountAddress("0x1"), "coin", "CoinStore", coin, U8Tag)
	require.NoError(t, err)

	expected := concat(
		[]byte{7},
		addressBytes(0x1),
		[]byte{4}, []byte("coin"),
		[]byte{9}, []byte("CoinStore"),
		[]byte{2},
		marshal(t, coin),
		[]byte{1},
	)
	xtest.RequireBytesEqual(t, expected, marshal(t, store))
	require.Equal(t, "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin, u8>", store.String())
}

func TestNewStructTagValidatesIdentifiers(t *testing.T) {
	addr := MustParseAccountAddress("0x1")
	for _, tt := range []struct{ module, name string }{
		{module: "", name: "Coin"},
		{module: "coin", name: ""},
		{module: "1coin", name: "Coin"},
		{module: "coin", name: "Co-in"},
		{module: "_", name: "Coin"},
	} {
		_, err := NewStructTag(addr, tt.module, tt.name)
		require.True(t, errors.Is(err, ErrInvalidIdentifier), "%s::%s", tt.module, tt.name)
	}

	_, err := NewStructTag(addr, "coin", "Coin", nil)
	require.True(t, errors.Is(err, bcs.ErrNilElement))
}

func TestEqualTags(t *testing.T) {
	require.True(t, EqualTags(NewVectorTag(U8Tag), NewVectorTag(U8Tag)))
	require.False(t, EqualTags(NewVectorTag(U8Tag), NewVectorTag(U16Tag)))
	require.False(t, EqualTags(U8Tag, nil))
	require.True(t, EqualTags(nil, nil))
	require.True(t, EqualTags(StringTag, MustParseTypeTag("0x1::string::String")))
}
