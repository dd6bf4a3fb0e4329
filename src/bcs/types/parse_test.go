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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseTypeTagRoundTrip(t *testing.T) {
	for _, in := range []string{
		"bool",
		"u8",
		"u16",
		"u32",
		"u64",
		"u128",
		"u256",
		"address",
		"signer",
		"vector<u8>",
		"vector<vector<address>>",
		"0x1::aptos_coin::AptosCoin",
		"0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>",
		"0x1::table::Table<u64, vector<0x1::string::String>>",
	} {
		t.Run(in, func(t *testing.T) {
			tag, err := ParseTypeTag(in)
			require.NoError(t, err)
			require.Equal(t, in, tag.String())
		})
	}
}

func TestParseStructTagStructure(t *testing.T) {
	parsed, err := ParseStructTag("0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin, vector<u8>>")
	require.NoError(t, err)

	expected := StructTag{
		Address: MustParseAccountAddress("0x1"),
		Module:  "coin",
		Name:    "CoinStore",
		TypeArgs: TagSequence{
			StructTag{
				Address: MustParseAccountAddress("0x1"),
				Module:  "aptos_coin",
				Name:    "AptosCoin",
			},
			NewVectorTag(U8Tag),
		},
	}
	require.True(t, cmp.Equal(expected, parsed), cmp.Diff(expected, parsed))
}

func TestParseTypeTagWhitespace(t *testing.T) {
	tag, err := ParseTypeTag(" vector< 0x1::coin::CoinStore< 0x1::aptos_coin::AptosCoin > > ")
	require.NoError(t, err)
	require.Equal(t, "vector<0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>>", tag.String())
}

func TestParseTypeTagLongAddress(t *testing.T) {
	tag, err := ParseStructTag("0x0000000000000000000000000000000000000000000000000000000000000001::coin::Coin")
	require.NoError(t, err)
	require.Equal(t, "0x1::coin::Coin", tag.String())
}

func TestParseTypeTagErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"u7",
		"vector",
		"vector<>",
		"vector<u8, u8>",
		"vector<u8",
		"u8>",
		"0x1::coin",
		"0x1::coin::",
		"0xzz::coin::Coin",
		"0x1::coin::Coin<u8",
		"0x1::coin::Coin<u8;u16>",
	} {
		_, err := ParseTypeTag(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrInvalidTypeTag), "%q: %v", in, err)
	}
}

func TestParseStructTagRejectsPrimitive(t *testing.T) {
	_, err := ParseStructTag("u64")
	require.True(t, errors.Is(err, ErrInvalidTypeTag))
}

func TestMustParseTypeTagPanics(t *testing.T) {
	require.Panics(t, func() { MustParseTypeTag("vector<") })
}
