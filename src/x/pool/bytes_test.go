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


package pool

import (
	"testing"

	"github.com/erikcasson/aptos-bcs/src/x/instrument"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

func newTestBytesPool(count int, capacities ...int) *bytesPool {
	buckets := make([]Bucket, 0, len(capacities))
	for _, c := range capacities {
		buckets = append(buckets, Bucket{Capacity: c, Count: Size(count)})
	}
	p := NewBytesPool(buckets, nil).(*bytesPool)
	p.Init()
	return p
}

func TestBytesPoolPicksSmallestFittingBucket(t *testing.T) {
	p := newTestBytesPool(2, 64, 16)

	assert.Nil(t, p.Get(0))

	small := p.Get(1)
	assert.Equal(t, 0, len(small))
	assert.Equal(t, 16, cap(small))

	exact := p.Get(16)
	assert.Equal(t, 16, cap(exact))

	larger := p.Get(17)
	assert.Equal(t, 64, cap(larger))
}

func TestBytesPoolReturnsBuffersToTheirBucket(t *testing.T) {
	p := newTestBytesPool(1, 8)

	b := p.Get(8)
	b = append(b, 0xca, 0xfe)
	p.Put(b)

	reused := p.Get(4)
	assert.Equal(t, 0, len(reused))
	assert.Equal(t, []byte{0xca, 0xfe}, reused[:2])
}

func TestBytesPoolOversizedAllocations(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	p := NewBytesPool([]Bucket{{Capacity: 8, Count: 2}}, NewObjectPoolOptions().
		SetInstrumentOptions(instrument.NewTestOptions().SetMetricsScope(scope))).(*bytesPool)
	p.Init()

	b := p.Get(1024)
	assert.Equal(t, 1024, cap(b))
	p.Put(b)

	// Oversized buffers are neither drawn from nor returned to a bucket.
	assert.Equal(t, 2, len(p.buckets[0].pool.(*objectPool).values))

	counters := scope.Snapshot().Counters()
	require.Contains(t, counters, "alloc-max+")
	assert.Equal(t, int64(1), counters["alloc-max+"].Value())
}

func TestBytesPoolWithoutInit(t *testing.T) {
	p := NewBytesPool([]Bucket{{Capacity: 8, Count: 1}}, nil)
	assert.Equal(t, 8, cap(p.Get(8)))
	assert.Equal(t, 4, cap(p.Get(4)))
}

func TestAppendByteGrowsThroughBuckets(t *testing.T) {
	p := newTestBytesPool(1, 2, 4, 8)

	var buf []byte
	for i := 0; i < 5; i++ {
		buf = AppendByte(buf, byte(i), p)
	}
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, buf)
	assert.Equal(t, 8, cap(buf))
}

func TestAppendBytesGrowsPastRequested(t *testing.T) {
	p := newTestBytesPool(1, 4, 64)

	buf := p.Get(4)
	buf = AppendBytes(buf, []byte{1, 2, 3}, p)
	assert.Equal(t, 4, cap(buf))

	buf = AppendBytes(buf, []byte{4, 5, 6, 7, 8, 9}, p)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, buf)
	assert.Equal(t, 64, cap(buf))

	buf = AppendBytes(buf, make([]byte, 100), p)
	assert.Equal(t, 109, len(buf))
	assert.True(t, cap(buf) >= 109)
}
