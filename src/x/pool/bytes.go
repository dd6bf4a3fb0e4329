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
	"fmt"
	"sort"

	"github.com/uber-go/tally"
)

type bytesPool struct {
	sizesAsc          []Bucket
	buckets           []bytesBucket
	maxBucketCapacity int
	opts              ObjectPoolOptions
	maxAlloc          tally.Counter
}

type bytesBucket struct {
	capacity int
	pool     ObjectPool
}

// NewBytesPool creates a new bytes pool bucketed by capacity.
func NewBytesPool(sizes []Bucket, opts ObjectPoolOptions) BytesPool {
	if opts == nil {
		opts = NewObjectPoolOptions()
	}

	sizesAsc := make([]Bucket, len(sizes))
	copy(sizesAsc, sizes)
	sort.Sort(BucketByCapacity(sizesAsc))

	var maxBucketCapacity int
	if len(sizesAsc) != 0 {
		maxBucketCapacity = sizesAsc[len(sizesAsc)-1].Capacity
	}

	return &bytesPool{
		opts:              opts,
		sizesAsc:          sizesAsc,
		maxBucketCapacity: maxBucketCapacity,
		maxAlloc:          opts.InstrumentOptions().MetricsScope().Counter("alloc-max"),
	}
}

func (p *bytesPool) alloc(capacity int) []byte {
	return make([]byte, 0, capacity)
}

func (p *bytesPool) Init() {
	buckets := make([]bytesBucket, len(p.sizesAsc))
	for i := range p.sizesAsc {
		capacity := p.sizesAsc[i].Capacity

		opts := p.opts.SetSize(int(p.sizesAsc[i].Count))
		iopts := opts.InstrumentOptions()
		opts = opts.SetInstrumentOptions(iopts.SetMetricsScope(
			iopts.MetricsScope().Tagged(map[string]string{
				"bucket-capacity": fmt.Sprintf("%d", capacity),
			})))

		buckets[i].capacity = capacity
		buckets[i].pool = NewObjectPool(opts)
		buckets[i].pool.Init(func() interface{} {
			return p.alloc(capacity)
		})
	}
	p.buckets = buckets
}

func (p *bytesPool) Get(capacity int) []byte {
	if capacity < 1 {
		return nil
	}
	if capacity > p.maxBucketCapacity {
		p.maxAlloc.Inc(1)
		return p.alloc(capacity)
	}
	for i := range p.buckets {
		if p.buckets[i].capacity >= capacity {
			return p.buckets[i].pool.Get().([]byte)
		}
	}
	return p.alloc(capacity)
}

func (p *bytesPool) Put(buffer []byte) {
	capacity := cap(buffer)
	if capacity > p.maxBucketCapacity {
		return
	}

	buffer = buffer[:0]
	for i := len(p.buckets) - 1; i >= 0; i-- {
		if capacity >= p.buckets[i].capacity {
			p.buckets[i].pool.Put(buffer)
			return
		}
	}
}

// AppendBytes appends data to buf, moving to a larger buffer from the pool
// when buf is at capacity. The old buffer is returned to the pool.
func AppendBytes(buf []byte, data []byte, pool BytesPool) []byte {
	needed := len(buf) + len(data)
	if needed > cap(buf) {
		newCap := 2 * cap(buf)
		if newCap < needed {
			newCap = needed
		}
		newBuf := pool.Get(newCap)
		if cap(newBuf) < needed {
			newBuf = make([]byte, 0, newCap)
		}
		newBuf = append(newBuf[:0], buf...)
		if cap(buf) > 0 {
			pool.Put(buf)
		}
		buf = newBuf
	}

	return append(buf, data...)
}

// AppendByte appends a byte to a byte slice getting a new slice from the
// BytesPool if the slice is at capacity.
func AppendByte(buf []byte, b byte, pool BytesPool) []byte {
	if len(buf) == cap(buf) {
		newCap := 2 * cap(buf)
		if newCap == 0 {
			newCap = 1
		}
		newBuf := pool.Get(newCap)
		if cap(newBuf) < newCap {
			newBuf = make([]byte, 0, newCap)
		}
		newBuf = append(newBuf[:0], buf...)
		if cap(buf) > 0 {
			pool.Put(buf)
		}
		buf = newBuf
	}

	return append(buf, b)
}
