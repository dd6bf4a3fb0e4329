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


package types

import (
	"github.com/erikcasson/aptos-bcs/src/x/bcs"

	"github.com/pkg/errors"
)

// StructTag identifies a named on-chain struct type and its generic type
// arguments.
type StructTag struct {
	Address  AccountAddress
	Module   string
	Name     string
	TypeArgs TagSequence
}

// NewStructTag creates a struct tag, validating the module and struct names.
func NewStructTag(
	address AccountAddress,
	module string,
	name string,
	typeArgs ...TypeTag,
) (StructTag, error) {
	if !isIdentifier(module) {
		return StructTag{}, errors.Wrapf(ErrInvalidIdentifier, "module %q", module)
	}
	if !isIdentifier(name) {
		return StructTag{}, errors.Wrapf(ErrInvalidIdentifier, "struct %q", name)
	}
	for i, arg := range typeArgs {
		if arg == nil {
			return StructTag{}, errors.Wrapf(bcs.ErrNilElement, "type argument %d", i)
		}
	}
	return StructTag{
		Address:  address,
		Module:   module,
		Name:     name,
		TypeArgs: TagSequence(typeArgs),
	}, nil
}

// Serialize writes the struct variant, the address, the module and struct
// names, then the type arguments.
func (t StructTag) Serialize(s bcs.Serializer) {
	s.WriteUleb128(uint32(VariantStruct))
	t.Address.Serialize(s)
	s.WriteString(t.Module)
	s.WriteString(t.Name)
	t.TypeArgs.Serialize(s)
}

// Framing returns bcs.FramingInline.
func (t StructTag) Framing() bcs.Framing { return bcs.FramingInline }

// Variant returns VariantStruct.
func (t StructTag) Variant() Variant { return VariantStruct }

func (t StructTag) String() string {
	str := t.Address.String() + "::" + t.Module + "::" + t.Name
	if len(t.TypeArgs) == 0 {
		return str
	}
	return str + "<" + t.TypeArgs.String() + ">"
}

func isIdentifier(str string) bool {
	if len(str) == 0 {
		return false
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case c == '_',
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	// A lone underscore is reserved.
	return str != "_"
}
