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
	"errors"
	"strconv"

	"github.com/erikcasson/aptos-bcs/src/x/instrument"
)

var errNegativeSize = errors.New("pool size cannot be negative")

// ObjectPoolConfiguration configures a pool of reusable objects.
type ObjectPoolConfiguration struct {
	// Size is the number of pooled objects, or "dynamic" to pool nothing
	// and allocate on demand. Zero selects the default size.
	Size Size `yaml:"size"`

	// Watermark controls background refilling.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// NewObjectPoolOptions creates object pool options from the configuration.
func (c ObjectPoolConfiguration) NewObjectPoolOptions(
	instrumentOpts instrument.Options,
) ObjectPoolOptions {
	opts := c.Watermark.apply(NewObjectPoolOptions().SetInstrumentOptions(instrumentOpts))
	switch {
	case c.Size == _dynamicPoolSize:
		return opts.SetDynamic(true)
	case c.Size > 0:
		return opts.SetSize(int(c.Size))
	}
	return opts
}

// BucketizedPoolConfiguration configures a bytes pool with one bucket of
// buffers per capacity.
type BucketizedPoolConfiguration struct {
	Buckets   []BucketConfiguration  `yaml:"buckets" validate:"min=1"`
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// NewObjectPoolOptions creates the options shared by every bucket.
func (c BucketizedPoolConfiguration) NewObjectPoolOptions(
	instrumentOpts instrument.Options,
) ObjectPoolOptions {
	return c.Watermark.apply(NewObjectPoolOptions().SetInstrumentOptions(instrumentOpts))
}

// NewBuckets returns the configured buckets.
func (c BucketizedPoolConfiguration) NewBuckets() []Bucket {
	buckets := make([]Bucket, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		buckets = append(buckets, b.NewBucket())
	}
	return buckets
}

// NewBytesPool builds and initializes a bytes pool from the configuration.
func (c BucketizedPoolConfiguration) NewBytesPool(
	instrumentOpts instrument.Options,
) BytesPool {
	p := NewBytesPool(c.NewBuckets(), c.NewObjectPoolOptions(instrumentOpts))
	p.Init()
	return p
}

// BucketConfiguration configures one bucket of a bytes pool.
type BucketConfiguration struct {
	// Capacity of each buffer in the bucket.
	Capacity int `yaml:"capacity" validate:"min=1"`

	// Count of buffers held by the bucket.
	Count Size `yaml:"count"`
}

// NewBucket creates the bucket.
func (c BucketConfiguration) NewBucket() Bucket {
	return Bucket{Capacity: c.Capacity, Count: c.Count}
}

// WatermarkConfiguration holds the fractions of a pool's size at which
// refilling starts and stops. Zero disables refilling.
type WatermarkConfiguration struct {
	RefillLowWatermark  float64 `yaml:"low" validate:"min=0,max=1"`
	RefillHighWatermark float64 `yaml:"high" validate:"min=0,max=1"`
}

func (c WatermarkConfiguration) apply(opts ObjectPoolOptions) ObjectPoolOptions {
	return opts.
		SetRefillLowWatermark(c.RefillLowWatermark).
		SetRefillHighWatermark(c.RefillHighWatermark)
}

// Size is a pool size that may also be given as "dynamic".
type Size int

// UnmarshalText unmarshals Size.
func (s *Size) UnmarshalText(b []byte) error {
	str := string(b)
	if str == "dynamic" {
		*s = _dynamicPoolSize
		return nil
	}

	n, err := strconv.Atoi(str)
	if err != nil {
		return err
	}
	if n < 0 {
		return errNegativeSize
	}
	*s = Size(n)
	return nil
}
