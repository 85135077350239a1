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

func (g *generator) stringSig(name string) *jen.Statement {
	return jen.Func().Params(jen.Id("v").Id(name)).Id("String").Params().String()
}

// formatExpr renders a string expression describing value, which has
// the Go type of t.
func (g *generator) formatExpr(t syntax.Type, value jen.Code) *jen.Statement {
	switch t := t.(type) {
	case *syntax.PrimitiveType:
		if t.Kind() == syntax.KindU8 {
			g.ctx.need(helperHexByte)
			return jen.Id("bareHexByte").Call(value)
		}
	case *syntax.DataType:
		g.ctx.need(helperHexBytes)
		if t.Length() == 0 {
			return jen.Id("bareHexBytes").Call(value)
		}
		return jen.Id("bareHexBytes").Call(sliceAll(value))
	case *syntax.OptionalType:
		g.ctx.need(helperOptional)
		return jen.Id("bareOptionalString").Call(value)
	}
	return jen.Qual("fmt", "Sprint").Call(value)
}

func (g *generator) structString(name string, st *syntax.StructType) {
	b := func() *jen.Statement { return jen.Id("b") }
	body := []jen.Code{jen.Var().Id("b").Qual("strings", "Builder")}
	prefix := name + "{"
	for _, field := range st.Fields() {
		body = append(body,
			b().Dot("WriteString").Call(jen.Lit(prefix+field.Name()+"=")),
			b().Dot("WriteString").Call(g.formatExpr(
				field.Type(),
				jen.Id("v").Dot(fieldName(field.Name())),
			)),
		)
		prefix = ", "
	}
	if len(st.Fields()) == 0 {
		body = append(body, b().Dot("WriteString").Call(jen.Lit(name+"{}")))
	} else {
		body = append(body, b().Dot("WriteString").Call(jen.Lit("}")))
	}
	body = append(body, jen.Return(b().Dot("String").Call()))

	g.file.Add(g.stringSig(name).Block(body...))
	g.file.Line()
}

func (g *generator) unionString(name string) {
	g.file.Add(g.stringSig(name).Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit(name+"{tag=%d, value=%v}"),
			jen.Id("v").Dot("Tag"),
			jen.Id("v").Dot("Value"),
		)),
	))
	g.file.Line()
}

// aliasString converts the receiver to its underlying type before
// formatting it, so the generated method does not call itself.
func (g *generator) aliasString(name string, t syntax.Type) {
	var value *jen.Statement
	if data, ok := t.(*syntax.DataType); ok && data.Length() != 0 {
		value = g.formatExpr(t, jen.Id("v"))
	} else {
		value = g.formatExpr(t, g.convertTo(t, jen.Id("v")))
	}
	g.file.Add(g.stringSig(name).Block(
		jen.Return(jen.Lit(name + "{value=").Op("+").Add(value).Op("+").Lit("}")),
	))
	g.file.Line()
}

func (g *generator) enumString(enum *syntax.UserDefinedEnum) {
	name := enum.Name()
	cases := make([]jen.Code, 0, len(enum.Values()))
	for _, value := range enum.Values() {
		cases = append(cases, jen.Case(jen.Id(enumConstName(name, value.Name()))).Block(
			jen.Return(jen.Lit(value.Name())),
		))
	}
	g.file.Add(g.stringSig(name).Block(
		jen.Switch(jen.Id("v")).Block(cases...),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit(name+"(%d)"),
			jen.Uint64().Call(jen.Id("v")),
		)),
	))
	g.file.Line()
}

func (g *generator) emitHelpers() {
	if g.ctx.needs(helperHexByte) {
		g.file.Func().Id("bareHexByte").Params(jen.Id("b").Uint8()).String().Block(
			jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("0x%02x"), jen.Id("b"))),
		)
		g.file.Line()
	}
	if g.ctx.needs(helperHexBytes) {
		b := func() *jen.Statement { return jen.Id("b") }
		g.file.Func().Id("bareHexBytes").Params(jen.Id("buf").Index().Byte()).String().Block(
			jen.Var().Id("b").Qual("strings", "Builder"),
			b().Dot("WriteString").Call(jen.Lit("[")),
			jen.For(jen.List(jen.Id("i"), jen.Id("c")).Op(":=").Range().Id("buf")).Block(
				jen.If(jen.Id("i").Op(">").Lit(0)).Block(
					b().Dot("WriteString").Call(jen.Lit(" ")),
				),
				b().Dot("WriteString").Call(jen.Id("bareHexByte").Call(jen.Id("c"))),
			),
			b().Dot("WriteString").Call(jen.Lit("]")),
			jen.Return(b().Dot("String").Call()),
		)
		g.file.Line()
	}
	if g.ctx.needs(helperOptional) {
		g.file.Func().Id("bareOptionalString").
			Types(jen.Id("T").Id("any")).
			Params(jen.Id("v").Op("*").Id("T")).
			String().
			Block(
				jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Lit("nil"))),
				jen.Return(jen.Qual("fmt", "Sprint").Call(jen.Op("*").Id("v"))),
			)
		g.file.Line()
	}
}
