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
	"encoding/binary"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/erikcasson/aptos-bcs/src/x/pool"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

var (
	defaultOptsOnce sync.Once
	defaultOpts     Options
)

func defaultOptions() Options {
	defaultOptsOnce.Do(func() {
		defaultOpts = NewOptions()
	})
	return defaultOpts
}

type serializer struct {
	opts      Options
	bytesPool pool.BytesPool
	pool      SerializerPool
	buf       []byte
	err       error
	tmp       [32]byte
}

// NewSerializer creates a new serializer, nil options selects the package
// defaults.
func NewSerializer(opts Options) Serializer {
	return newSerializer(opts, nil)
}

func newSerializer(opts Options, p SerializerPool) *serializer {
	if opts == nil {
		opts = defaultOptions()
	}
	return &serializer{
		opts:      opts,
		bytesPool: opts.BytesPool(),
		pool:      p,
	}
}

// Marshal serializes a single element and returns its bytes. Nil options
// selects the package defaults.
func Marshal(e Element, opts Options) ([]byte, error) {
	s := newSerializer(opts, nil)
	defer s.Close()

	s.Serialize(e)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// WriteLength writes a collection length as a ULEB128 value, failing the
// serializer if the length does not fit in a u32.
func WriteLength(s Serializer, n int) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		s.Fail(errors.Wrapf(ErrLengthOverflow, "length %d", n))
		return
	}
	s.WriteUleb128(uint32(n))
}

func (s *serializer) WriteBool(v bool) {
	if v {
		s.WriteU8(1)
		return
	}
	s.WriteU8(0)
}

func (s *serializer) WriteU8(v uint8) {
	if s.err != nil {
		return
	}
	if s.bytesPool == nil {
		s.buf = append(s.buf, v)
		return
	}
	s.ensureBuffer(1)
	s.buf = pool.AppendByte(s.buf, v, s.bytesPool)
}

func (s *serializer) WriteU16(v uint16) {
	if s.err != nil {
		return
	}
	binary.LittleEndian.PutUint16(s.tmp[:2], v)
	s.append(s.tmp[:2])
}

func (s *serializer) WriteU32(v uint32) {
	if s.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(s.tmp[:4], v)
	s.append(s.tmp[:4])
}

func (s *serializer) WriteU64(v uint64) {
	if s.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(s.tmp[:8], v)
	s.append(s.tmp[:8])
}

func (s *serializer) WriteU128(v uint128.Uint128) {
	if s.err != nil {
		return
	}
	v.PutBytes(s.tmp[:16])
	s.append(s.tmp[:16])
}

func (s *serializer) WriteU256(v *uint256.Int) {
	if s.err != nil {
		return
	}
	if v == nil {
		s.Fail(errors.Wrap(ErrNilElement, "u256"))
		return
	}
	// NB: uint256.Int stores its limbs least significant first.
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(s.tmp[i*8:(i+1)*8], v[i])
	}
	s.append(s.tmp[:32])
}

func (s *serializer) WriteUleb128(v uint32) {
	if s.err != nil {
		return
	}
	n := PutUleb128(s.tmp[:], v)
	s.append(s.tmp[:n])
}

func (s *serializer) WriteBytes(v []byte) {
	if s.err != nil {
		return
	}
	WriteLength(s, len(v))
	if s.err != nil {
		return
	}
	s.append(v)
}

func (s *serializer) WriteFixedBytes(v []byte) {
	if s.err != nil {
		return
	}
	s.append(v)
}

func (s *serializer) WriteString(v string) {
	if s.err != nil {
		return
	}
	if !utf8.ValidString(v) {
		s.Fail(errors.Wrapf(ErrInvalidUTF8, "%q", v))
		return
	}
	s.WriteBytes([]byte(v))
}

func (s *serializer) Serialize(e Element) {
	if s.err != nil {
		return
	}
	if e == nil {
		s.Fail(ErrNilElement)
		return
	}
	e.Serialize(s)
}

func (s *serializer) SerializeElement(e Element) {
	if s.err != nil {
		return
	}
	if e == nil {
		s.Fail(ErrNilElement)
		return
	}

	if e.Framing() != FramingLengthPrefixed {
		e.Serialize(s)
		return
	}

	scratch := newSerializer(s.opts, nil)
	scratch.Serialize(e)
	if err := scratch.Err(); err != nil {
		s.Fail(err)
	} else {
		s.WriteBytes(scratch.buf)
	}
	scratch.Close()
}

func (s *serializer) Fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *serializer) Err() error {
	return s.err
}

func (s *serializer) Len() int {
	return len(s.buf)
}

func (s *serializer) Bytes() []byte {
	if s.err != nil {
		return nil
	}
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

func (s *serializer) Reset() {
	s.buf = s.buf[:0]
	s.err = nil
}

func (s *serializer) Close() {
	if s.pool != nil {
		s.Reset()
		s.pool.Put(s)
		return
	}
	if s.bytesPool != nil && cap(s.buf) > 0 {
		s.bytesPool.Put(s.buf)
	}
	s.buf = nil
	s.err = nil
}

func (s *serializer) append(data []byte) {
	if s.bytesPool == nil {
		s.buf = append(s.buf, data...)
		return
	}
	s.ensureBuffer(len(data))
	s.buf = pool.AppendBytes(s.buf, data, s.bytesPool)
}

// ensureBuffer draws the first buffer of a session from the bytes pool.
func (s *serializer) ensureBuffer(size int) {
	if s.buf != nil {
		return
	}
	capacity := s.opts.InitialCapacity()
	if capacity < size {
		capacity = size
	}
	s.buf = s.bytesPool.Get(capacity)
}
