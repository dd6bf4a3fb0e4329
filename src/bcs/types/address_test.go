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
	"github.com/erikcasson/aptos-bcs/src/x/instrument"
	xtest "github.com/erikcasson/aptos-bcs/src/x/test"

	"github.com/stretchr/testify/require"
)

var testOptions = bcs.NewOptions().SetInstrumentOptions(instrument.NewTestOptions())

func marshal(t *testing.T, e bcs.Element) []byte {
	b, err := bcs.Marshal(e, testOptions)
	require.NoError(t, err)
	return b
}

func addressBytes(last byte) []byte {
	b := make([]byte, AccountAddressLength)
	b[AccountAddressLength-1] = last
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestParseAccountAddress(t *testing.T) {
	tests := []struct {
		in       string
		expected []byte
	}{
		{in: "0x1", expected: addressBytes(0x1)},
		{in: "1", expected: addressBytes(0x1)},
		{in: "0x0a", expected: addressBytes(0xa)},
		{in: "0X0000000000000000000000000000000000000000000000000000000000000003", expected: addressBytes(0x3)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			addr, err := ParseAccountAddress(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.expected, addr[:])
		})
	}
}

func TestParseAccountAddressErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"0x",
		"0xzz",
		"0x" + "00000000000000000000000000000000000000000000000000000000000000001",
	} {
		_, err := ParseAccountAddress(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrInvalidAddress), in)
	}
}

func TestMustParseAccountAddressPanics(t *testing.T) {
	require.Panics(t, func() { MustParseAccountAddress("0xnope") })
}

func TestAccountAddressString(t *testing.T) {
	require.Equal(t, "0x1", MustParseAccountAddress("0x1").String())
	require.Equal(t, "0x0", AccountAddress{}.String())
	require.Equal(t, "0xf", MustParseAccountAddress("0xf").String())

	long := "0x00000000000000000000000000000000000000000000000000000000000000a1"
	addr := MustParseAccountAddress("0xa1")
	require.False(t, addr.IsSpecial())
	require.Equal(t, long, addr.String())
	require.Equal(t, long, addr.StringLong())
}

func TestAccountAddressSerializeHasNoPrefix(t *testing.T) {
	xtest.RequireHexEqual(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		marshal(t, MustParseAccountAddress("0x1")))
}
