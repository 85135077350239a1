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

package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"go.nobloat.org/bare/syntax"
)

type primitiveInfo struct {
	goType func() *jen.Statement
	method string
}

var primitives = map[syntax.Kind]primitiveInfo{
	syntax.KindUInt:   {jen.Uint64, "Uint"},
	syntax.KindInt:    {jen.Int64, "Int"},
	syntax.KindU8:     {jen.Uint8, "U8"},
	syntax.KindU16:    {jen.Uint16, "U16"},
	syntax.KindU32:    {jen.Uint32, "U32"},
	syntax.KindU64:    {jen.Uint64, "U64"},
	syntax.KindI8:     {jen.Int8, "I8"},
	syntax.KindI16:    {jen.Int16, "I16"},
	syntax.KindI32:    {jen.Int32, "I32"},
	syntax.KindI64:    {jen.Int64, "I64"},
	syntax.KindF32:    {jen.Float32, "F32"},
	syntax.KindF64:    {jen.Float64, "F64"},
	syntax.KindBool:   {jen.Bool, "Bool"},
	syntax.KindString: {jen.String, "String"},
	syntax.KindVoid:   {func() *jen.Statement { return jen.Struct() }, "Void"},
}

func uintLit(v uint64) *jen.Statement {
	return jen.Op(strconv.FormatUint(v, 10))
}

// sliceAll renders x[:].
func sliceAll(x jen.Code) *jen.Statement {
	return jen.Add(x).Index(jen.Empty(), jen.Empty())
}

func (g *generator) goType(t syntax.Type) *jen.Statement {
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		return primitives[t.Kind()].goType()
	case *syntax.NamedUserType:
		return jen.Id(t.Name())
	case *syntax.DataType:
		if t.Length() == 0 {
			return jen.Index().Byte()
		}
		return jen.Index(uintLit(t.Length())).Byte()
	case *syntax.OptionalType:
		return jen.Op("*").Add(g.goType(t.Inner()))
	case *syntax.ArrayType:
		if t.Length() == 0 {
			return jen.Index().Add(g.goType(t.Member()))
		}
		return jen.Index(uintLit(t.Length())).Add(g.goType(t.Member()))
	case *syntax.MapType:
		return jen.Map(g.goType(t.Key())).Add(g.goType(t.Value()))
	}
	panic(fmt.Sprintf("codegen: no Go type for %s", t.Kind()))
}

// convertTo renders the conversion of value to the Go type of t.
func (g *generator) convertTo(t syntax.Type, value jen.Code) *jen.Statement {
	if _, ok := t.(*syntax.OptionalType); ok {
		return jen.Parens(g.goType(t)).Call(value)
	}
	return g.goType(t).Call(value)
}

// isFill reports whether values of t are decoded into an existing
// variable rather than returned.
func isFill(t syntax.Type) bool {
	switch t := t.(type) {
	case *syntax.DataType:
		return t.Length() != 0
	case *syntax.ArrayType:
		return t.Length() != 0
	}
	return false
}

func (g *generator) decoderMethod(name string) *jen.Statement {
	return jen.Parens(jen.Op("*").Qual(g.rt, "Decoder")).Dot(name)
}

func (g *generator) encoderMethod(name string) *jen.Statement {
	return jen.Parens(jen.Op("*").Qual(g.rt, "Encoder")).Dot(name)
}

func (g *generator) decoderParam() *jen.Statement {
	return jen.Id("d").Op("*").Qual(g.rt, "Decoder")
}

func (g *generator) encoderParam() *jen.Statement {
	return jen.Id("e").Op("*").Qual(g.rt, "Encoder")
}

// decodeCall renders an expression of type (T, error) that reads a value
// of t from the decoder named d. t must not be a fill type.
func (g *generator) decodeCall(t syntax.Type) *jen.Statement {
	d := jen.Id("d")
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		return d.Dot(primitives[t.Kind()].method).Call()
	case *syntax.NamedUserType:
		return jen.Id("Decode" + t.Name()).Call(d)
	case *syntax.DataType:
		return d.Dot("Data").Call()
	case *syntax.OptionalType:
		return jen.Qual(g.rt, "DecodeOptional").Call(d, g.decodeFunc(t.Inner()))
	case *syntax.ArrayType:
		return jen.Qual(g.rt, "DecodeSlice").Call(d, g.decodeFunc(t.Member()))
	case *syntax.MapType:
		return jen.Qual(g.rt, "DecodeMap").Call(d, g.decodeFunc(t.Key()), g.decodeFunc(t.Value()))
	}
	panic(fmt.Sprintf("codegen: no decoder for %s", t.Kind()))
}

// decodeFill renders an expression of type error that reads a value of
// the fill type t into target.
func (g *generator) decodeFill(t syntax.Type, target jen.Code) *jen.Statement {
	d := jen.Id("d")
	slice := sliceAll(target)
	switch t := t.(type) {
	case *syntax.DataType:
		return d.Dot("DataFixed").Call(slice)
	case *syntax.ArrayType:
		return jen.Qual(g.rt, "DecodeArray").Call(d, slice, g.decodeFunc(t.Member()))
	}
	panic(fmt.Sprintf("codegen: %s is not decoded in place", t.Kind()))
}

// decodeFunc renders an expression of type bare.DecodeFunc[T] for t.
func (g *generator) decodeFunc(t syntax.Type) *jen.Statement {
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		return g.decoderMethod(primitives[t.Kind()].method)
	case *syntax.NamedUserType:
		return jen.Id("Decode" + t.Name())
	case *syntax.DataType:
		if t.Length() == 0 {
			return g.decoderMethod("Data")
		}
	}
	sig := jen.Func().Params(g.decoderParam()).Params(g.goType(t), jen.Error())
	if isFill(t) {
		return sig.Block(
			jen.Var().Id("o").Add(g.goType(t)),
			jen.Err().Op(":=").Add(g.decodeFill(t, jen.Id("o"))),
			jen.Return(jen.Id("o"), jen.Err()),
		)
	}
	return sig.Block(jen.Return(g.decodeCall(t)))
}

// encodeCall renders an expression of type error that writes value as t
// to the encoder named e.
func (g *generator) encodeCall(t syntax.Type, value jen.Code) *jen.Statement {
	e := jen.Id("e")
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		return e.Dot(primitives[t.Kind()].method).Call(value)
	case *syntax.NamedUserType:
		return jen.Add(value).Dot("Encode").Call(e)
	case *syntax.DataType:
		if t.Length() == 0 {
			return e.Dot("Data").Call(value)
		}
		return e.Dot("DataFixed").Call(sliceAll(value))
	case *syntax.OptionalType:
		return jen.Qual(g.rt, "EncodeOptional").Call(e, value, g.encodeFunc(t.Inner()))
	case *syntax.ArrayType:
		if t.Length() == 0 {
			return jen.Qual(g.rt, "EncodeSlice").Call(e, value, g.encodeFunc(t.Member()))
		}
		return jen.Qual(g.rt, "EncodeArray").Call(
			e,
			sliceAll(value),
			uintLit(t.Length()),
			g.encodeFunc(t.Member()),
		)
	case *syntax.MapType:
		return jen.Qual(g.rt, "EncodeMap").Call(e, value, g.encodeFunc(t.Key()), g.encodeFunc(t.Value()))
	}
	panic(fmt.Sprintf("codegen: no encoder for %s", t.Kind()))
}

// encodeFunc renders an expression of type bare.EncodeFunc[T] for t.
func (g *generator) encodeFunc(t syntax.Type) *jen.Statement {
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		return g.encoderMethod(primitives[t.Kind()].method)
	case *syntax.NamedUserType:
		return jen.Qual(g.rt, "EncodeMarshaler").Types(jen.Id(t.Name()))
	case *syntax.DataType:
		if t.Length() == 0 {
			return g.encoderMethod("Data")
		}
	}
	return jen.Func().
		Params(g.encoderParam(), jen.Id("v").Add(g.goType(t))).
		Error().
		Block(jen.Return(g.encodeCall(t, jen.Id("v"))))
}

// fieldName maps a schema field name to an exported Go identifier that
// does not shadow a generated method.
func fieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	out := string(unicode.ToUpper(r)) + name[size:]
	switch out {
	case "Encode", "String":
		return out + "_"
	}
	return out
}

func enumConstName(enumName, valueName string) string {
	var b strings.Builder
	b.WriteString(enumName)
	for _, part := range strings.Split(valueName, "_") {
		if part == "" {
			continue
		}
		b.WriteString(part[:1])
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
