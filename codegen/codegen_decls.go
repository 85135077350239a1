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
	"github.com/dave/jennifer/jen"

	"go.nobloat.org/bare/syntax"
)

func ifErr(init jen.Code, ret ...jen.Code) *jen.Statement {
	return jen.If(init, jen.Err().Op("!=").Nil()).Block(jen.Return(ret...))
}

func (g *generator) decodeSig(name string) *jen.Statement {
	return jen.Func().
		Id("Decode"+name).
		Params(g.decoderParam()).
		Params(jen.Id(name), jen.Error())
}

func (g *generator) encodeSig(name string) *jen.Statement {
	return jen.Func().
		Params(jen.Id("v").Id(name)).
		Id("Encode").
		Params(g.encoderParam()).
		Error()
}

func (g *generator) structDecl(name string, st *syntax.StructType) {
	fields := st.Fields()

	members := make([]jen.Code, 0, len(fields))
	for _, field := range fields {
		members = append(members, jen.Id(fieldName(field.Name())).Add(g.goType(field.Type())))
	}
	g.file.Type().Id(name).Struct(members...)
	g.file.Line()

	decode := []jen.Code{jen.Var().Id("o").Id(name)}
	if len(fields) > 0 {
		decode = append(decode, jen.Var().Err().Error())
	}
	for _, field := range fields {
		target := jen.Id("o").Dot(fieldName(field.Name()))
		var assign *jen.Statement
		if isFill(field.Type()) {
			assign = jen.Err().Op("=").Add(g.decodeFill(field.Type(), target))
		} else {
			assign = jen.List(target, jen.Err()).Op("=").Add(g.decodeCall(field.Type()))
		}
		decode = append(decode, ifErr(assign, jen.Id("o"), jen.Err()))
	}
	decode = append(decode, jen.Return(jen.Id("o"), jen.Nil()))
	g.file.Add(g.decodeSig(name).Block(decode...))
	g.file.Line()

	encode := make([]jen.Code, 0, len(fields)+1)
	for _, field := range fields {
		value := jen.Id("v").Dot(fieldName(field.Name()))
		encode = append(encode, ifErr(
			jen.Err().Op(":=").Add(g.encodeCall(field.Type(), value)),
			jen.Err(),
		))
	}
	encode = append(encode, jen.Return(jen.Nil()))
	g.file.Add(g.encodeSig(name).Block(encode...))
	g.file.Line()

	if g.opts.stringMethods {
		g.structString(name, st)
	}
}

func (g *generator) unionDecl(name string, union *syntax.UnionType) {
	g.file.Type().Id(name).Struct(
		jen.Id("Tag").Uint64(),
		jen.Id("Value").Any(),
	)
	g.file.Line()

	decoders := make(jen.Dict, len(union.Variants()))
	encoders := make(jen.Dict, len(union.Variants()))
	for _, variant := range union.Variants() {
		tag := uintLit(variant.Tag())
		decoders[tag] = jen.Qual(g.rt, "UnionDecoder").Call(g.decodeFunc(variant.Type()))
		encoders[tag] = jen.Qual(g.rt, "UnionEncoder").Call(g.encodeFunc(variant.Type()))
	}

	g.file.Add(g.decodeSig(name).Block(
		jen.List(jen.Id("tag"), jen.Id("value"), jen.Err()).Op(":=").Qual(g.rt, "DecodeUnion").Call(
			jen.Id("d"),
			jen.Map(jen.Uint64()).Qual(g.rt, "DecodeFunc").Types(jen.Id("any")).Values(decoders),
		),
		jen.Return(
			jen.Id(name).Values(jen.Dict{
				jen.Id("Tag"):   jen.Id("tag"),
				jen.Id("Value"): jen.Id("value"),
			}),
			jen.Err(),
		),
	))
	g.file.Line()

	g.file.Add(g.encodeSig(name).Block(
		jen.Return(jen.Qual(g.rt, "EncodeUnion").Call(
			jen.Id("e"),
			jen.Id("v").Dot("Tag"),
			jen.Id("v").Dot("Value"),
			jen.Map(jen.Uint64()).Qual(g.rt, "EncodeFunc").Types(jen.Id("any")).Values(encoders),
		)),
	))
	g.file.Line()

	if g.opts.stringMethods {
		g.unionString(name)
	}
}

func (g *generator) aliasDecl(name string, t syntax.Type) {
	g.file.Type().Id(name).Add(g.goType(t))
	g.file.Line()

	var decode []jen.Code
	if isFill(t) {
		decode = []jen.Code{
			jen.Var().Id("o").Id(name),
			jen.Err().Op(":=").Add(g.decodeFill(t, jen.Id("o"))),
			jen.Return(jen.Id("o"), jen.Err()),
		}
	} else {
		decode = []jen.Code{
			jen.List(jen.Id("v"), jen.Err()).Op(":=").Add(g.decodeCall(t)),
			jen.Return(jen.Id(name).Call(jen.Id("v")), jen.Err()),
		}
	}
	g.file.Add(g.decodeSig(name).Block(decode...))
	g.file.Line()

	value := jen.Id("v")
	if !isFill(t) {
		value = g.convertTo(t, jen.Id("v"))
	}
	g.file.Add(g.encodeSig(name).Block(jen.Return(g.encodeCall(t, value))))
	g.file.Line()

	if g.opts.stringMethods {
		g.aliasString(name, t)
	}
}

func (g *generator) enumDecl(enum *syntax.UserDefinedEnum) {
	name := enum.Name()
	width := primitives[enum.Width()]

	g.file.Type().Id(name).Add(width.goType())
	g.file.Line()

	defs := make([]jen.Code, 0, len(enum.Values()))
	members := make([]jen.Code, 0, len(enum.Values()))
	rawValues := make([]jen.Code, 0, len(enum.Values()))
	for _, value := range enum.Values() {
		constName := enumConstName(name, value.Name())
		defs = append(defs, jen.Id(constName).Id(name).Op("=").Add(uintLit(value.Value())))
		members = append(members, jen.Id(constName))
		rawValues = append(rawValues, uintLit(value.Value()))
	}
	g.file.Const().Defs(defs...)
	g.file.Line()

	g.file.Add(g.decodeSig(name).Block(
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Id("d").Dot("Uint").Call(),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Lit(0), jen.Err())),
		jen.Switch(jen.Id("v")).Block(
			jen.Case(rawValues...).Block(jen.Return(jen.Id(name).Call(jen.Id("v")), jen.Nil())),
		),
		jen.Return(
			jen.Lit(0),
			jen.Qual(g.rt, "InvalidEnumValue").Call(jen.Lit(name), jen.Uint64().Call(jen.Id("v"))),
		),
	))
	g.file.Line()

	g.file.Add(g.encodeSig(name).Block(
		jen.Switch(jen.Id("v")).Block(
			jen.Case(members...).Block(
				jen.Return(jen.Id("e").Dot("Uint").Call(jen.Uint64().Call(jen.Id("v")))),
			),
		),
		jen.Return(jen.Qual(g.rt, "InvalidEnumValue").Call(jen.Lit(name), jen.Uint64().Call(jen.Id("v")))),
	))
	g.file.Line()

	if g.opts.stringMethods {
		g.enumString(enum)
	}
}
