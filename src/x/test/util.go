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


package test

import (
	"encoding/hex"
	"strings"

	"github.com/stretchr/testify/require"
)

// MustDecodeHex decodes a hex string, optionally 0x prefixed and with
// spaces between bytes, failing the test if it is malformed.
func MustDecodeHex(t require.TestingT, str string) []byte {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	str = strings.TrimPrefix(str, "0x")
	str = strings.Replace(str, " ", "", -1)
	b, err := hex.DecodeString(str)
	require.NoError(t, err, "malformed hex %q", str)
	return b
}

// RequireHexEqual is RequireBytesEqual with the expected bytes given as hex.
func RequireHexEqual(t require.TestingT, expected string, actual []byte) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	RequireBytesEqual(t, MustDecodeHex(t, expected), actual)
}
