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
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var primitiveTags = map[string]TypeTag{
	"bool":    BoolTag,
	"u8":      U8Tag,
	"u16":     U16Tag,
	"u32":     U32Tag,
	"u64":     U64Tag,
	"u128":    U128Tag,
	"u256":    U256Tag,
	"address": AddressTag,
	"signer":  SignerTag,
}

// ParseTypeTag parses a type in Move source form, for example
// "vector<u8>" or "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>".
func ParseTypeTag(str string) (TypeTag, error) {
	p := &tagParser{src: str}
	tag, err := p.parseTag()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return tag, nil
}

// ParseStructTag parses a struct type such as "0x1::aptos_coin::AptosCoin".
func ParseStructTag(str string) (StructTag, error) {
	tag, err := ParseTypeTag(str)
	if err != nil {
		return StructTag{}, err
	}
	st, ok := tag.(StructTag)
	if !ok {
		return StructTag{}, errors.Wrapf(ErrInvalidTypeTag, "%q is not a struct type", str)
	}
	return st, nil
}

// MustParseTypeTag parses a type tag and panics on failure.
func MustParseTypeTag(str string) TypeTag {
	tag, err := ParseTypeTag(str)
	if err != nil {
		panic(err)
	}
	return tag
}

type tagParser struct {
	src string
	pos int
}

func (p *tagParser) parseTag() (TypeTag, error) {
	p.skipSpace()
	word := p.word()
	if word == "" {
		return nil, p.errorf("expected type")
	}

	if !p.peek("::") {
		if tag, ok := primitiveTags[word]; ok {
			return tag, nil
		}
		if word == "vector" {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if len(args) != 1 {
				return nil, p.errorf("vector takes one type argument, got %d", len(args))
			}
			return NewVectorTag(args[0]), nil
		}
		return nil, p.errorf("unknown type %q", word)
	}

	addr, err := ParseAccountAddress(word)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidTypeTag, err.Error())
	}
	if err := p.expect("::"); err != nil {
		return nil, err
	}
	module := p.word()
	if err := p.expect("::"); err != nil {
		return nil, err
	}
	name := p.word()

	var args []TypeTag
	p.skipSpace()
	if p.peek("<") {
		if args, err = p.parseArgs(); err != nil {
			return nil, err
		}
	}

	st, err := NewStructTag(addr, module, name, args...)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidTypeTag, err.Error())
	}
	return st, nil
}

// parseArgs parses "<T1, T2, ...>".
func (p *tagParser) parseArgs() ([]TypeTag, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	var args []TypeTag
	for {
		arg, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		switch {
		case p.peek(","):
			p.pos++
		case p.peek(">"):
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("expected ',' or '>'")
		}
	}
}

func (p *tagParser) word() string {
	p.skipSpace()
	start := p.pos
	for !p.done() {
		c := rune(p.src[p.pos])
		if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *tagParser) expect(token string) error {
	p.skipSpace()
	if !p.peek(token) {
		return p.errorf("expected %q", token)
	}
	p.pos += len(token)
	return nil
}

func (p *tagParser) peek(token string) bool {
	return strings.HasPrefix(p.src[p.pos:], token)
}

func (p *tagParser) skipSpace() {
	for !p.done() && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *tagParser) done() bool {
	return p.pos >= len(p.src)
}

func (p *tagParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTypeTag, "%q at offset %d: "+format,
		append([]interface{}{p.src, p.pos}, args...)...)
}
