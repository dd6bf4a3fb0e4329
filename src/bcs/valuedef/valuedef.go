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


// Package valuedef builds BCS elements from YAML value definitions.
package valuedef

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/erikcasson/aptos-bcs/src/bcs/types"
	"github.com/erikcasson/aptos-bcs/src/x/bcs"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Type names a kind of value definition.
type Type string

// Supported value definition types.
const (
	BoolType          Type = "bool"
	U8Type            Type = "u8"
	U16Type           Type = "u16"
	U32Type           Type = "u32"
	U64Type           Type = "u64"
	U128Type          Type = "u128"
	U256Type          Type = "u256"
	Uleb128Type       Type = "uleb128"
	StringType        Type = "string"
	BytesType         Type = "bytes"
	FixedBytesType    Type = "fixed_bytes"
	AddressType       Type = "address"
	TypeTagType       Type = "type_tag"
	SequenceType      Type = "sequence"
	BytesSequenceType Type = "bytes_sequence"
	MapType           Type = "map"
)

var (
	errUnknownType  = errors.New("unknown value type")
	errInvalidValue = errors.New("invalid value")
)

// ValueConfiguration defines a single value. Scalars use Value, sequences
// use Values and maps use Entries. Byte arrays are given as hex.
type ValueConfiguration struct {
	Type    Type                 `yaml:"type" validate:"nonzero"`
	Value   string               `yaml:"value"`
	Values  []ValueConfiguration `yaml:"values"`
	Entries []EntryConfiguration `yaml:"entries"`
}

// EntryConfiguration defines one map entry.
type EntryConfiguration struct {
	Key   ValueConfiguration `yaml:"key"`
	Value ValueConfiguration `yaml:"value"`
}

// Builder turns value definitions into elements.
type Builder struct {
	opts   bcs.Options
	logger *zap.Logger
}

// NewBuilder creates a builder whose maps use the given serializer options.
func NewBuilder(opts bcs.Options) *Builder {
	return &Builder{
		opts:   opts,
		logger: opts.InstrumentOptions().Logger(),
	}
}

// BuildAll builds every definition in order.
func (b *Builder) BuildAll(cfgs []ValueConfiguration) ([]bcs.Element, error) {
	elems := make([]bcs.Element, 0, len(cfgs))
	for i, cfg := range cfgs {
		elem, err := b.build(cfg, fmt.Sprintf("values[%d]", i))
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// Build builds a single definition.
func (b *Builder) Build(cfg ValueConfiguration) (bcs.Element, error) {
	return b.build(cfg, "value")
}

func (b *Builder) build(cfg ValueConfiguration, path string) (bcs.Element, error) {
	elem, err := b.buildElement(cfg, path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s (%s)", path, cfg.Type)
	}
	b.logger.Debug("built value",
		zap.String("path", path),
		zap.String("type", string(cfg.Type)))
	return elem, nil
}

func (b *Builder) buildElement(cfg ValueConfiguration, path string) (bcs.Element, error) {
	switch cfg.Type {
	case BoolType:
		v, err := strconv.ParseBool(cfg.Value)
		if err != nil {
			return nil, invalidValue(cfg.Value, err)
		}
		return bcs.Bool(v), nil
	case U8Type:
		v, err := parseUint(cfg.Value, 8)
		return bcs.U8(v), err
	case U16Type:
		v, err := parseUint(cfg.Value, 16)
		return bcs.U16(v), err
	case U32Type:
		v, err := parseUint(cfg.Value, 32)
		return bcs.U32(v), err
	case U64Type:
		v, err := parseUint(cfg.Value, 64)
		return bcs.U64(v), err
	case Uleb128Type:
		v, err := parseUint(cfg.Value, 32)
		return bcs.Uleb128(v), err
	case U128Type:
		v, err := bcs.ParseU128(cfg.Value)
		if err != nil {
			return nil, err
		}
		return bcs.U128(v), nil
	case U256Type:
		v, err := bcs.ParseU256(cfg.Value)
		if err != nil {
			return nil, err
		}
		return bcs.U256(*v), nil
	case StringType:
		return bcs.Str(cfg.Value), nil
	case BytesType:
		v, err := parseHex(cfg.Value)
		return bcs.Bytes(v), err
	case FixedBytesType:
		v, err := parseHex(cfg.Value)
		return bcs.FixedBytes(v), err
	case AddressType:
		return types.ParseAccountAddress(cfg.Value)
	case TypeTagType:
		return types.ParseTypeTag(cfg.Value)
	case SequenceType:
		elems := make([]bcs.Element, 0, len(cfg.Values))
		for i, v := range cfg.Values {
			elem, err := b.build(v, fmt.Sprintf("%s.values[%d]", path, i))
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return bcs.NewSequence(elems...), nil
	case BytesSequenceType:
		seq := make(bcs.BytesSequence, 0, len(cfg.Values))
		for _, v := range cfg.Values {
			blob, err := parseHex(v.Value)
			if err != nil {
				return nil, err
			}
			seq = append(seq, blob)
		}
		return seq, nil
	case MapType:
		m := bcs.NewMap(b.opts)
		for i, entry := range cfg.Entries {
			entryPath := fmt.Sprintf("%s.entries[%d]", path, i)
			key, err := b.build(entry.Key, entryPath+".key")
			if err != nil {
				return nil, err
			}
			value, err := b.build(entry.Value, entryPath+".value")
			if err != nil {
				return nil, err
			}
			if err := m.Put(key, value); err != nil {
				return nil, errors.Wrap(err, entryPath)
			}
		}
		return m, nil
	default:
		return nil, errors.Wrapf(errUnknownType, "%q", cfg.Type)
	}
}

func parseUint(str string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(str), 0, bits)
	if err != nil {
		return 0, invalidValue(str, err)
	}
	return v, nil
}

func parseHex(str string) ([]byte, error) {
	str = strings.TrimPrefix(strings.TrimSpace(str), "0x")
	v, err := hex.DecodeString(str)
	if err != nil {
		return nil, invalidValue(str, err)
	}
	return v, nil
}

func invalidValue(str string, err error) error {
	return errors.Wrapf(errInvalidValue, "%q: %v", str, err)
}
