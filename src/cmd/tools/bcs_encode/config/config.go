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


// Package config contains the bcs_encode tool configuration.
package config

import (
	"encoding/hex"

	"github.com/erikcasson/aptos-bcs/src/bcs/valuedef"
	"github.com/erikcasson/aptos-bcs/src/x/bcs"
	"github.com/erikcasson/aptos-bcs/src/x/instrument"
	xlog "github.com/erikcasson/aptos-bcs/src/x/log"
	"github.com/erikcasson/aptos-bcs/src/x/pool"

	"github.com/pkg/errors"
)

// Configuration is the configuration for the bcs_encode tool.
type Configuration struct {
	// Logging configuration.
	Logging xlog.Configuration `yaml:"logging"`

	// InitialCapacity is the initial capacity of each serializer buffer.
	InitialCapacity int `yaml:"initialCapacity" validate:"min=0"`

	// SerializerPool configures the pool of reusable serializers.
	SerializerPool pool.ObjectPoolConfiguration `yaml:"serializerPool"`

	// ScratchPool configures the buckets of byte buffers used by serializers.
	ScratchPool *pool.BucketizedPoolConfiguration `yaml:"scratchPool"`

	// HexPrefix prefixes output with 0x.
	HexPrefix bool `yaml:"hexPrefix"`

	// Values are encoded in order into a single buffer.
	Values []valuedef.ValueConfiguration `yaml:"values" validate:"min=1"`
}

// NewOptions builds serializer options from the configuration.
func (c Configuration) NewOptions(iopts instrument.Options) (bcs.Options, error) {
	opts := bcs.NewOptions().SetInstrumentOptions(iopts)
	if c.InitialCapacity > 0 {
		opts = opts.SetInitialCapacity(c.InitialCapacity)
	}
	if c.ScratchPool != nil {
		scope := iopts.MetricsScope().SubScope("scratch-pool")
		opts = opts.SetBytesPool(c.ScratchPool.NewBytesPool(iopts.SetMetricsScope(scope)))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewSerializerPool builds and initializes the serializer pool.
func (c Configuration) NewSerializerPool(
	opts bcs.Options,
) bcs.SerializerPool {
	p := bcs.NewSerializerPool(c.SerializerPool.NewObjectPoolOptions(opts.InstrumentOptions()))
	p.Init(func() bcs.Serializer {
		return bcs.NewPooledSerializer(opts, p)
	})
	return p
}

// Encode builds every configured value and serializes them in order into a
// serializer taken from p.
func (c Configuration) Encode(opts bcs.Options, p bcs.SerializerPool) ([]byte, error) {
	elems, err := valuedef.NewBuilder(opts).BuildAll(c.Values)
	if err != nil {
		return nil, err
	}

	s := p.Get()
	defer s.Close()

	for _, e := range elems {
		s.Serialize(e)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "could not serialize values")
	}
	return s.Bytes(), nil
}

// FormatHex formats encoded bytes as lowercase hex.
func (c Configuration) FormatHex(b []byte) string {
	if c.HexPrefix {
		return "0x" + hex.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
