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

	"github.com/erikcasson/aptos-bcs/src/x/instrument"
	"github.com/erikcasson/aptos-bcs/src/x/pool"
)

const (
	defaultInitialCapacity = 64
)

var (
	errNegativeInitialCapacity = errors.New("negative initial capacity")
	errNoInstrumentOptions     = errors.New("no instrument options")

	defaultBuckets = []pool.Bucket{
		{Capacity: 64, Count: 256},
		{Capacity: 256, Count: 128},
		{Capacity: 1024, Count: 64},
		{Capacity: 4096, Count: 16},
	}
)

type options struct {
	initialCapacity int
	bytesPool       pool.BytesPool
	instrumentOpts  instrument.Options
}

// NewOptions creates a new set of serializer options backed by a
// freshly initialized bytes pool.
func NewOptions() Options {
	iopts := instrument.NewOptions()
	bytesPool := pool.NewBytesPool(defaultBuckets, pool.NewObjectPoolOptions().
		SetInstrumentOptions(iopts.SetMetricsScope(
			iopts.MetricsScope().SubScope("bcs-bytes-pool"))))
	bytesPool.Init()

	return &options{
		initialCapacity: defaultInitialCapacity,
		bytesPool:       bytesPool,
		instrumentOpts:  iopts,
	}
}

func (o *options) SetInitialCapacity(value int) Options {
	opts := *o
	opts.initialCapacity = value
	return &opts
}

func (o *options) InitialCapacity() int {
	return o.initialCapacity
}

func (o *options) SetBytesPool(value pool.BytesPool) Options {
	opts := *o
	opts.bytesPool = value
	return &opts
}

func (o *options) BytesPool() pool.BytesPool {
	return o.bytesPool
}

func (o *options) SetInstrumentOptions(value instrument.Options) Options {
	opts := *o
	opts.instrumentOpts = value
	return &opts
}

func (o *options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

func (o *options) Validate() error {
	if o.initialCapacity < 0 {
		return errNegativeInitialCapacity
	}
	if o.instrumentOpts == nil {
		return errNoInstrumentOptions
	}
	return o.instrumentOpts.Validate()
}
