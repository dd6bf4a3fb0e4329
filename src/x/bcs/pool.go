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
	"github.com/erikcasson/aptos-bcs/src/x/pool"
)

type serializerPool struct {
	pool pool.ObjectPool
}

// NewSerializerPool creates a new pool of serializers.
func NewSerializerPool(opts pool.ObjectPoolOptions) SerializerPool {
	if opts == nil {
		opts = pool.NewObjectPoolOptions()
	}
	iopts := opts.InstrumentOptions()
	opts = opts.SetInstrumentOptions(iopts.SetMetricsScope(
		iopts.MetricsScope().SubScope("serializer-pool")))
	return &serializerPool{pool: pool.NewObjectPool(opts)}
}

func (p *serializerPool) Init(alloc SerializerAlloc) {
	p.pool.Init(func() interface{} {
		return alloc()
	})
}

func (p *serializerPool) Get() Serializer {
	return p.pool.Get().(Serializer)
}

func (p *serializerPool) Put(s Serializer) {
	p.pool.Put(s)
}

// NewPooledSerializer creates a serializer that returns itself to the given
// pool on Close, keeping its buffer for reuse.
func NewPooledSerializer(opts Options, p SerializerPool) Serializer {
	return newSerializer(opts, p)
}
