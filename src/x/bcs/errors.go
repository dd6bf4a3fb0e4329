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
	"errors"
)

var (
	// ErrInvalidUTF8 is returned when a string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bcs: string is not valid utf-8")

	// ErrU128OutOfRange is returned when a value does not fit in 128 unsigned bits.
	ErrU128OutOfRange = errors.New("bcs: value out of range for u128")

	// ErrU256OutOfRange is returned when a value does not fit in 256 unsigned bits.
	ErrU256OutOfRange = errors.New("bcs: value out of range for u256")

	// ErrLengthOverflow is returned when a length does not fit in a u32.
	ErrLengthOverflow = errors.New("bcs: length exceeds u32 range")

	// ErrDuplicateMapKey is returned when a map already holds a key with the
	// same serialized bytes.
	ErrDuplicateMapKey = errors.New("bcs: duplicate map key")

	// ErrNilElement is returned when a nil element or value is serialized.
	ErrNilElement = errors.New("bcs: nil element")

	// ErrNotSupported is returned by every decoding operation.
	ErrNotSupported = errors.New("bcs: decoding not supported")
)
