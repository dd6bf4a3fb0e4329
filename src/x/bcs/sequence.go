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

// Sequence is an ordered collection of elements, encoded as a ULEB128 count
// followed by each element according to its framing. Inline elements are
// concatenated directly and composite elements are length-prefixed, so
// sequences of sequences stay unambiguous.
type Sequence struct {
	elems []Element
}

// NewSequence creates a new sequence over the given elements.
func NewSequence(elems ...Element) Sequence {
	return Sequence{elems: elems}
}

// Append returns a sequence with the elements appended.
func (q Sequence) Append(elems ...Element) Sequence {
	out := make([]Element, 0, len(q.elems)+len(elems))
	out = append(out, q.elems...)
	out = append(out, elems...)
	return Sequence{elems: out}
}

// Len returns the number of elements.
func (q Sequence) Len() int {
	return len(q.elems)
}

// Elements returns the elements of the sequence.
func (q Sequence) Elements() []Element {
	return q.elems
}

// Serialize writes the count and then each element.
func (q Sequence) Serialize(s Serializer) {
	WriteLength(s, len(q.elems))
	for _, e := range q.elems {
		s.SerializeElement(e)
	}
}

// Framing returns FramingLengthPrefixed.
func (q Sequence) Framing() Framing {
	return FramingLengthPrefixed
}

// BytesSequence is an ordered collection of byte arrays, encoded as a
// ULEB128 count followed by each array length-prefixed.
type BytesSequence [][]byte

// Serialize writes the count and then each byte array.
func (q BytesSequence) Serialize(s Serializer) {
	WriteLength(s, len(q))
	for _, b := range q {
		s.WriteBytes(b)
	}
}

// Framing returns FramingLengthPrefixed.
func (q BytesSequence) Framing() Framing {
	return FramingLengthPrefixed
}
