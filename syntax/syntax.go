// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package syntax parses BARE schema sources.
//
// A schema is a sequence of declarations:
//
//	type PublicKey data<128>
//
//	enum Department {
//		ACCOUNTING
//		JSMITH = 99
//	}
//
//	type Person (Customer | Employee)
//
// [Parse] produces a [*Schema] holding the declarations in source order.
// Names are checked for case conventions while parsing, but references
// between declarations are resolved later by the compiler.
package syntax

import (
	"bytes"
	"io"
	"math"
	"regexp"
	"strconv"
)

var (
	userTypeNameRegexp  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	fieldNameRegexp     = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	enumValueNameRegexp = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

var primitiveKinds = map[TokenKind]Kind{
	T_UINT:   KindUInt,
	T_INT:    KindInt,
	T_U8:     KindU8,
	T_U16:    KindU16,
	T_U32:    KindU32,
	T_U64:    KindU64,
	T_I8:     KindI8,
	T_I16:    KindI16,
	T_I32:    KindI32,
	T_I64:    KindI64,
	T_F32:    KindF32,
	T_F64:    KindF64,
	T_BOOL:   KindBool,
	T_STRING: KindString,
	T_VOID:   KindVoid,
}

var enumWidths = map[TokenKind]Kind{
	T_UINT: KindUInt,
	T_U8:   KindU8,
	T_U16:  KindU16,
	T_U32:  KindU32,
	T_U64:  KindU64,
}

func Parse(src []byte) (*Schema, error) {
	return ParseReader(bytes.NewReader(src))
}

func ParseReader(r io.Reader) (*Schema, error) {
	p := &parser{lexer: NewLexer(NewScanner(r))}
	return p.parseSchema()
}

type parser struct {
	lexer *Lexer
}

func (p *parser) expect(kind TokenKind, required string) (Token, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, errUnexpectedToken(tok, required)
	}
	return tok, nil
}

func (p *parser) expectInteger() (uint64, Token, error) {
	tok, err := p.expect(T_INTEGER, "integer")
	if err != nil {
		return 0, tok, err
	}
	n, err := strconv.ParseUint(tok.Text, 10, 64)
	if err != nil {
		return 0, tok, errIntegerOutOfRange(tok)
	}
	return n, tok, nil
}

func (p *parser) expectLength() (uint64, error) {
	n, tok, err := p.expectInteger()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errZeroLength(tok)
	}
	return n, nil
}

func (p *parser) parseSchema() (*Schema, error) {
	var decls []Decl
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		var decl Decl
		switch tok.Kind {
		case T_EOF:
			return &Schema{decls: decls}, nil
		case T_TYPE:
			decl, err = p.parseUserType(tok)
		case T_ENUM:
			decl, err = p.parseUserEnum(tok)
		default:
			return nil, errUnexpectedToken(tok, "'type' or 'enum'")
		}
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
}

func (p *parser) parseUserType(keyword Token) (*UserDefinedType, error) {
	name, err := p.expect(T_NAME, "type name")
	if err != nil {
		return nil, err
	}
	if !userTypeNameRegexp.MatchString(name.Text) {
		return nil, errInvalidTypeName(name)
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &UserDefinedType{
		name: name.Text,
		typ:  typ,
		pos:  keyword.Pos,
	}, nil
}

func (p *parser) parseType() (Type, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if kind, ok := primitiveKinds[tok.Kind]; ok {
		return &PrimitiveType{kind: kind, pos: tok.Pos}, nil
	}
	switch tok.Kind {
	case T_DATA:
		return p.parseData(tok)
	case T_OPTIONAL:
		return p.parseOptional(tok)
	case T_OPEN_SQUARE:
		return p.parseArray(tok)
	case T_MAP:
		return p.parseMap(tok)
	case T_OPEN_PAREN:
		return p.parseUnion(tok)
	case T_OPEN_CURL:
		return p.parseStruct(tok)
	case T_NAME:
		if !userTypeNameRegexp.MatchString(tok.Text) {
			return nil, errInvalidTypeName(tok)
		}
		return &NamedUserType{name: tok.Text, pos: tok.Pos}, nil
	}
	return nil, errUnexpectedToken(tok, "type")
}

// data | data<N>
func (p *parser) parseData(keyword Token) (*DataType, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != T_LESS {
		p.lexer.Pushback(tok)
		return &DataType{pos: keyword.Pos}, nil
	}
	length, err := p.expectLength()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(T_GREATER, "'>'"); err != nil {
		return nil, err
	}
	return &DataType{length: length, pos: keyword.Pos}, nil
}

// optional<T>
func (p *parser) parseOptional(keyword Token) (*OptionalType, error) {
	if _, err := p.expect(T_LESS, "'<'"); err != nil {
		return nil, err
	}
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(T_GREATER, "'>'"); err != nil {
		return nil, err
	}
	return &OptionalType{inner: inner, pos: keyword.Pos}, nil
}

// []T | [N]T
func (p *parser) parseArray(open Token) (*ArrayType, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	var length uint64
	switch tok.Kind {
	case T_CLOSE_SQUARE:
	case T_INTEGER:
		p.lexer.Pushback(tok)
		if length, err = p.expectLength(); err != nil {
			return nil, err
		}
		if _, err := p.expect(T_CLOSE_SQUARE, "']'"); err != nil {
			return nil, err
		}
	default:
		return nil, errUnexpectedToken(tok, "integer or ']'")
	}
	member, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ArrayType{member: member, length: length, pos: open.Pos}, nil
}

// map[K]V
func (p *parser) parseMap(keyword Token) (*MapType, error) {
	if _, err := p.expect(T_OPEN_SQUARE, "'['"); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(T_CLOSE_SQUARE, "']'"); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &MapType{key: key, value: value, pos: keyword.Pos}, nil
}

// (A | B = 5 | C)
func (p *parser) parseUnion(open Token) (*UnionType, error) {
	var variants []*UnionVariant
	var tag uint64
	exhausted := false
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}

		tok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == T_EQ {
			if tag, tok, err = p.expectInteger(); err != nil {
				return nil, err
			}
		} else {
			p.lexer.Pushback(tok)
			if exhausted {
				return nil, errImplicitValueOverflow(typeToken(typ))
			}
		}
		variants = append(variants, &UnionVariant{typ: typ, tag: tag})
		exhausted = tag == math.MaxUint64
		tag++

		tok, err = p.lexer.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case T_PIPE:
			continue
		case T_CLOSE_PAREN:
			return &UnionType{variants: variants, pos: open.Pos}, nil
		}
		return nil, errUnexpectedToken(tok, "'|' or ')'")
	}
}

func typeToken(typ Type) Token {
	tok := Token{Kind: T_NAME, Text: typ.Kind().String(), Pos: typ.Pos()}
	if named, ok := typ.(*NamedUserType); ok {
		tok.Text = named.name
	}
	return tok
}

// { name: T ... }
func (p *parser) parseStruct(open Token) (*StructType, error) {
	var fields []*StructField
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == T_CLOSE_CURL {
			return &StructType{fields: fields, pos: open.Pos}, nil
		}
		if tok.Kind != T_NAME {
			return nil, errUnexpectedToken(tok, "field name or '}'")
		}
		if !fieldNameRegexp.MatchString(tok.Text) {
			return nil, errInvalidFieldName(tok)
		}
		if _, err := p.expect(T_COLON, "':'"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &StructField{
			name: tok.Text,
			typ:  typ,
			pos:  tok.Pos,
		})
	}
}

// enum Name [width] { VALUE [= N] ... }
func (p *parser) parseUserEnum(keyword Token) (*UserDefinedEnum, error) {
	name, err := p.expect(T_NAME, "enum name")
	if err != nil {
		return nil, err
	}
	if !userTypeNameRegexp.MatchString(name.Text) {
		return nil, errInvalidEnumName(name)
	}

	width := KindUInt
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if kind, ok := enumWidths[tok.Kind]; ok {
		width = kind
	} else {
		p.lexer.Pushback(tok)
	}
	if _, err := p.expect(T_OPEN_CURL, "'{'"); err != nil {
		return nil, err
	}

	var values []*EnumValue
	var value uint64
	exhausted := false
	for {
		tok, err := p.expect(T_NAME, "enum value name")
		if err != nil {
			return nil, err
		}
		if !enumValueNameRegexp.MatchString(tok.Text) {
			return nil, errInvalidEnumValueName(tok)
		}

		next, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if next.Kind == T_EQ {
			if value, _, err = p.expectInteger(); err != nil {
				return nil, err
			}
		} else {
			p.lexer.Pushback(next)
			if exhausted {
				return nil, errImplicitValueOverflow(tok)
			}
		}
		values = append(values, &EnumValue{
			name:  tok.Text,
			value: value,
			pos:   tok.Pos,
		})
		exhausted = value == math.MaxUint64
		value++

		next, err = p.lexer.Next()
		if err != nil {
			return nil, err
		}
		switch next.Kind {
		case T_CLOSE_CURL:
			return &UserDefinedEnum{
				name:   name.Text,
				width:  width,
				values: values,
				pos:    keyword.Pos,
			}, nil
		case T_NAME:
			p.lexer.Pushback(next)
		default:
			return nil, errUnexpectedToken(next, "enum value name or '}'")
		}
	}
}
