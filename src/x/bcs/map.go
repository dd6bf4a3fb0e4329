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
	"bytes"
	"sort"

	"github.com/pkg/errors"
)

// Map is a key to value association serialized in canonical order: entries
// are sorted by the bytes of each key's serialized encoding, never by
// insertion order or by the logical key.
//
// Keys and values are serialized when they are put, using the same framing
// rules as sequence elements. A Map is not safe for concurrent use.
type Map struct {
	opts    Options
	entries []mapEntry
}

type mapEntry struct {
	key   []byte
	value []byte
}

// NewMap creates a new empty map, nil options selects the package defaults.
func NewMap(opts Options) *Map {
	if opts == nil {
		opts = defaultOptions()
	}
	return &Map{opts: opts}
}

// NewStringMap creates a map from string keys to elements.
func NewStringMap(values map[string]Element, opts Options) (*Map, error) {
	m := NewMap(opts)
	for k, v := range values {
		if err := m.Put(Str(k), v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Put adds an entry. A key whose serialized bytes equal those of an existing
// key is rejected with ErrDuplicateMapKey, whatever order the keys arrive in.
func (m *Map) Put(key, value Element) error {
	keyBytes, err := m.encode(key)
	if err != nil {
		return errors.Wrap(err, "could not serialize map key")
	}

	idx := sort.Search(len(m.entries), func(i int) bool {
		return bytes.Compare(m.entries[i].key, keyBytes) >= 0
	})
	if idx < len(m.entries) && bytes.Equal(m.entries[idx].key, keyBytes) {
		return errors.Wrapf(ErrDuplicateMapKey, "key %x", keyBytes)
	}

	valueBytes, err := m.encode(value)
	if err != nil {
		return errors.Wrap(err, "could not serialize map value")
	}

	m.entries = append(m.entries, mapEntry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = mapEntry{key: keyBytes, value: valueBytes}
	return nil
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Serialize writes the entry count followed by each key and value in
// ascending order of serialized key bytes.
func (m *Map) Serialize(s Serializer) {
	WriteLength(s, len(m.entries))
	for _, e := range m.entries {
		s.WriteFixedBytes(e.key)
		s.WriteFixedBytes(e.value)
	}
}

// Framing returns FramingLengthPrefixed.
func (m *Map) Framing() Framing {
	return FramingLengthPrefixed
}

func (m *Map) encode(e Element) ([]byte, error) {
	s := newSerializer(m.opts, nil)
	defer s.Close()

	s.SerializeElement(e)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}
