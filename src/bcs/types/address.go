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
	"encoding/hex"
	"strings"

	"github.com/erikcasson/aptos-bcs/src/x/bcs"

	"github.com/pkg/errors"
)

// AccountAddressLength is the number of bytes in an account address.
const AccountAddressLength = 32

// AccountAddress is a 32 byte Aptos account address. Its length is fixed by
// the schema, so it is written without a length prefix.
type AccountAddress [AccountAddressLength]byte

// ParseAccountAddress parses a hex address with or without the 0x prefix.
// Short forms such as 0x1 are left-padded with zeros.
func ParseAccountAddress(str string) (AccountAddress, error) {
	var addr AccountAddress

	digits := strings.TrimPrefix(strings.TrimPrefix(str, "0x"), "0X")
	if len(digits) == 0 || len(digits) > 2*AccountAddressLength {
		return addr, errors.Wrapf(ErrInvalidAddress, "%q", str)
	}
	if len(digits) < 2*AccountAddressLength {
		digits = strings.Repeat("0", 2*AccountAddressLength-len(digits)) + digits
	}

	if _, err := hex.Decode(addr[:], []byte(digits)); err != nil {
		return AccountAddress{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", str, err)
	}
	return addr, nil
}

// MustParseAccountAddress parses an address and panics on failure.
func MustParseAccountAddress(str string) AccountAddress {
	addr, err := ParseAccountAddress(str)
	if err != nil {
		panic(err)
	}
	return addr
}

// Serialize writes the 32 raw address bytes.
func (a AccountAddress) Serialize(s bcs.Serializer) { s.WriteFixedBytes(a[:]) }

// Framing returns bcs.FramingInline.
func (a AccountAddress) Framing() bcs.Framing { return bcs.FramingInline }

// IsSpecial reports whether the address is one of the reserved addresses
// 0x0 through 0xf.
func (a AccountAddress) IsSpecial() bool {
	for _, b := range a[:AccountAddressLength-1] {
		if b != 0 {
			return false
		}
	}
	return a[AccountAddressLength-1] < 0x10
}

// String returns the short form for special addresses and the full 64 digit
// form otherwise.
func (a AccountAddress) String() string {
	if a.IsSpecial() {
		return "0x" + hex.EncodeToString(a[AccountAddressLength-1:])[1:]
	}
	return "0x" + hex.EncodeToString(a[:])
}

// StringLong returns the full 64 digit form.
func (a AccountAddress) StringLong() string {
	return "0x" + hex.EncodeToString(a[:])
}
