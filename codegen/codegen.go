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

// Package codegen renders a compiled BARE schema as Go source code.
//
// The generated package has one Go type per schema declaration, a
// DecodeX function and an Encode method for each, and optionally String
// methods. Generated code depends only on the bare runtime package.
package codegen

import (
	"bytes"
	"go/token"

	"github.com/dave/jennifer/jen"

	"go.nobloat.org/bare/compiler"
	"go.nobloat.org/bare/syntax"
)

const (
	DefaultPackageName   = "messages"
	DefaultRuntimeImport = "go.nobloat.org/bare"
)

type GenerateOption interface {
	apply(opts *GenerateOptions)
}

type generateOption func(opts *GenerateOptions)

func (f generateOption) apply(opts *GenerateOptions) {
	f(opts)
}

type GenerateOptions struct {
	packageName   string
	runtimeImport string
	stringMethods bool
}

func NewGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	out := &GenerateOptions{
		packageName:   DefaultPackageName,
		runtimeImport: DefaultRuntimeImport,
		stringMethods: true,
	}
	for _, opt := range opts {
		opt.apply(out)
	}
	return out
}

// WithPackageName sets the package clause of the generated file.
func WithPackageName(name string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.packageName = name
	})
}

// WithRuntimeImport sets the import path of the bare runtime package.
func WithRuntimeImport(path string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.runtimeImport = path
	})
}

// WithStringMethods controls whether String methods are generated.
func WithStringMethods(enabled bool) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.stringMethods = enabled
	})
}

// Generate renders the schema as a single Go source file. Nothing is
// returned unless the whole schema could be rendered.
func Generate(schema *compiler.Schema, opts ...GenerateOption) ([]byte, error) {
	return NewGenerateOptions(opts...).Generate(schema)
}

func (opts *GenerateOptions) Generate(schema *compiler.Schema) ([]byte, error) {
	if !token.IsIdentifier(opts.packageName) {
		return nil, errInvalidPackageName(opts.packageName)
	}
	if err := checkSupported(schema); err != nil {
		return nil, err
	}
	if err := checkNames(schema); err != nil {
		return nil, err
	}

	f := jen.NewFile(opts.packageName)
	if name := schema.SourceName(); name != "" {
		f.HeaderComment("Code generated by bare codegen from " + name + ". DO NOT EDIT.")
	} else {
		f.HeaderComment("Code generated by bare codegen. DO NOT EDIT.")
	}
	f.ImportName(opts.runtimeImport, "bare")

	g := &generator{
		opts: opts,
		rt:   opts.runtimeImport,
		file: f,
	}
	for _, decl := range schema.Decls() {
		g.decl(decl)
	}
	g.emitHelpers()

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errRender(err)
	}
	return buf.Bytes(), nil
}

type helper uint8

const (
	helperHexByte helper = 1 << iota
	helperHexBytes
	helperOptional
)

type genContext struct {
	helpers helper
}

func (ctx *genContext) need(h helper) {
	ctx.helpers |= h
	if h == helperHexBytes {
		ctx.helpers |= helperHexByte
	}
}

func (ctx *genContext) needs(h helper) bool {
	return ctx.helpers&h != 0
}

type generator struct {
	opts *GenerateOptions
	rt   string
	file *jen.File
	ctx  genContext
}

func (g *generator) decl(decl syntax.Decl) {
	switch decl := decl.(type) {
	case *syntax.UserDefinedEnum:
		g.enumDecl(decl)
	case *syntax.UserDefinedType:
		switch t := decl.Type().(type) {
		case *syntax.StructType:
			g.structDecl(decl.Name(), t)
		case *syntax.UnionType:
			g.unionDecl(decl.Name(), t)
		default:
			g.aliasDecl(decl.Name(), t)
		}
	}
}

// checkSupported rejects schemas that have no Go rendering before any
// output is produced.
func checkSupported(schema *compiler.Schema) error {
	for _, decl := range schema.Decls() {
		udt, ok := decl.(*syntax.UserDefinedType)
		if !ok {
			continue
		}
		top := udt.Type()
		switch t := top.(type) {
		case *syntax.OptionalType:
			return errOptionalAlias(udt.Name(), udt.Pos())
		case *syntax.StructType:
			for _, field := range t.Fields() {
				if err := checkNested(udt.Name(), field.Type()); err != nil {
					return err
				}
			}
			continue
		case *syntax.UnionType:
			for _, variant := range t.Variants() {
				if err := checkNested(udt.Name(), variant.Type()); err != nil {
					return err
				}
			}
			continue
		}
		if err := checkNested(udt.Name(), top); err != nil {
			return err
		}
	}
	return nil
}

func checkNested(declName string, t syntax.Type) error {
	switch t := t.(type) {
	case *syntax.StructType, *syntax.UnionType:
		return errAnonymousType(t.Kind(), declName, t.Pos())
	case *syntax.OptionalType:
		return checkNested(declName, t.Inner())
	case *syntax.ArrayType:
		return checkNested(declName, t.Member())
	case *syntax.MapType:
		if err := checkNested(declName, t.Key()); err != nil {
			return err
		}
		return checkNested(declName, t.Value())
	}
	return nil
}

func checkNames(schema *compiler.Schema) error {
	seen := make(map[string]bool)
	claim := func(ident string, decl syntax.Decl) error {
		if seen[ident] {
			return errNameCollision(ident, decl.Name(), decl.Pos())
		}
		seen[ident] = true
		return nil
	}
	for _, decl := range schema.Decls() {
		if err := claim(decl.Name(), decl); err != nil {
			return err
		}
		if err := claim("Decode"+decl.Name(), decl); err != nil {
			return err
		}
		if enum, ok := decl.(*syntax.UserDefinedEnum); ok {
			for _, value := range enum.Values() {
				if err := claim(enumConstName(enum.Name(), value.Name()), decl); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
