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
	"testing"

	xtest "github.com/erikcasson/aptos-bcs/src/x/test"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var testMapExpected = []byte{
	3,
	1, 97, 57, 48, 0, 0,
	1, 98, 162, 131, 1, 0,
	1, 99, 21, 93, 0, 0,
}

func TestMapOrderIndependentOfInsertion(t *testing.T) {
	type kv struct {
		key   string
		value uint32
	}
	entries := []kv{{"a", 12345}, {"b", 99234}, {"c", 23829}}
	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
		{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	for _, perm := range permutations {
		m := NewMap(testOptions)
		for _, idx := range perm {
			require.NoError(t, m.Put(Str(entries[idx].key), U32(entries[idx].value)))
		}
		actual, err := Marshal(m, testOptions)
		require.NoError(t, err)
		xtest.RequireBytesEqual(t, testMapExpected, actual)
	}
}

func TestNewStringMap(t *testing.T) {
	m, err := NewStringMap(map[string]Element{
		"c": U32(23829),
		"a": U32(12345),
		"b": U32(99234),
	}, testOptions)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	actual, err := Marshal(m, testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, testMapExpected, actual)
}

func TestMapOrdersBySerializedKeyBytes(t *testing.T) {
	// "aa" sorts before "b" as a string, but its serialized form starts with
	// a larger length prefix.
	m := NewMap(testOptions)
	require.NoError(t, m.Put(Str("aa"), U8(1)))
	require.NoError(t, m.Put(Str("b"), U8(2)))

	actual, err := Marshal(m, testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{2, 1, 98, 2, 2, 97, 97, 1}, actual)
}

func TestMapRejectsDuplicateKeys(t *testing.T) {
	m := NewMap(testOptions)
	require.NoError(t, m.Put(Str("a"), U32(1)))
	err := m.Put(Str("a"), U32(2))
	require.Equal(t, ErrDuplicateMapKey, errors.Cause(err))
	require.Equal(t, 1, m.Len())

	actual, err := Marshal(m, testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{1, 1, 97, 1, 0, 0, 0}, actual)
}

func TestMapDuplicateDetectionUsesSerializedBytes(t *testing.T) {
	// Different element types with identical encodings collide.
	m := NewMap(testOptions)
	require.NoError(t, m.Put(Bytes("a"), U8(1)))
	err := m.Put(Str("a"), U8(2))
	require.Equal(t, ErrDuplicateMapKey, errors.Cause(err))
}

func TestMapRejectsInvalidEntries(t *testing.T) {
	m := NewMap(testOptions)
	err := m.Put(Str("\xff"), U8(1))
	require.Equal(t, ErrInvalidUTF8, errors.Cause(err))

	err = m.Put(Str("k"), Str("\xff"))
	require.Equal(t, ErrInvalidUTF8, errors.Cause(err))
	require.Equal(t, 0, m.Len())
}

func TestEmptyMap(t *testing.T) {
	actual, err := Marshal(NewMap(testOptions), testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{0}, actual)
}

func TestMapEmbeddedIsLengthPrefixed(t *testing.T) {
	inner := NewMap(testOptions)
	require.NoError(t, inner.Put(Str("a"), Bool(true)))

	actual, err := Marshal(NewSequence(inner), testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{1, 4, 1, 1, 97, 1}, actual)

	outer := NewMap(testOptions)
	require.NoError(t, outer.Put(Str("m"), inner))
	require.NoError(t, outer.Put(Str("s"), NewSequence(U8(5))))
	actual, err = Marshal(outer, testOptions)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{
		2,
		1, 109, 4, 1, 1, 97, 1,
		1, 115, 2, 1, 5,
	}, actual)
}

func TestNilMapOptionsUsesDefaults(t *testing.T) {
	m := NewMap(nil)
	require.NoError(t, m.Put(U8(2), U8(0)))
	require.NoError(t, m.Put(U8(1), U8(0)))

	actual, err := Marshal(m, nil)
	require.NoError(t, err)
	xtest.RequireBytesEqual(t, []byte{2, 1, 0, 2, 0}, actual)
}
