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

// Package compiler checks a parsed schema for semantic errors.
//
// The parser accepts any syntactically valid schema. The compiler resolves
// type references and rejects schemas that cannot be encoded: duplicate
// names, unknown types, invalid map keys, misplaced void, conflicting enum
// values or union tags, and types that contain themselves by value.
package compiler

import (
	"errors"
	"iter"
	"math"
	"slices"

	"go.nobloat.org/bare/syntax"
)

var enumWidthMax = map[syntax.Kind]uint64{
	syntax.KindUInt: math.MaxUint64,
	syntax.KindU8:   math.MaxUint8,
	syntax.KindU16:  math.MaxUint16,
	syntax.KindU32:  math.MaxUint32,
	syntax.KindU64:  math.MaxUint64,
}

type CompileOption interface {
	apply(*CompileOptions)
}

type compileOption func(*CompileOptions)

func (f compileOption) apply(opts *CompileOptions) { f(opts) }

type CompileOptions struct {
	sourceName string
}

// WithSourceName records the name of the schema source, for use in
// diagnostics and generated file headers.
func WithSourceName(name string) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.sourceName = name
	})
}

type CompileResult struct {
	schema *Schema

	Errors   []*Error
	Warnings []*Warning
}

// Schema returns the compiled schema, or the compile errors joined into one
// error value.
func (r *CompileResult) Schema() (*Schema, error) {
	if len(r.Errors) > 0 {
		errs := make([]error, 0, len(r.Errors))
		for _, err := range r.Errors {
			errs = append(errs, err)
		}
		return nil, errors.Join(errs...)
	}
	return r.schema, nil
}

func Compile(parsedSchema *syntax.Schema, opts ...CompileOption) CompileResult {
	return NewCompileOptions(opts...).Compile(parsedSchema)
}

func NewCompileOptions(opts ...CompileOption) *CompileOptions {
	compileOptions := &CompileOptions{}
	for _, opt := range opts {
		opt.apply(compileOptions)
	}
	return compileOptions
}

func (opts *CompileOptions) Compile(parsedSchema *syntax.Schema) CompileResult {
	c := compiler{
		parsed:      parsedSchema,
		declsByName: make(map[string]syntax.Decl),
	}
	c.compileSchema()
	if len(c.errors) > 0 {
		return CompileResult{
			Errors:   c.errors,
			Warnings: c.warnings,
		}
	}
	return CompileResult{
		schema: &Schema{
			sourceName:  opts.sourceName,
			decls:       parsedSchema.Decls(),
			declsByName: c.declsByName,
		},
		Warnings: c.warnings,
	}
}

// Schema is a schema that has passed semantic checks. Every type reference
// in it names a declaration.
type Schema struct {
	sourceName  string
	decls       []syntax.Decl
	declsByName map[string]syntax.Decl
}

func (s *Schema) SourceName() string {
	return s.sourceName
}

// Decls returns the declarations in source order.
func (s *Schema) Decls() []syntax.Decl {
	return s.decls
}

func (s *Schema) Lookup(name string) (syntax.Decl, bool) {
	decl, ok := s.declsByName[name]
	return decl, ok
}

// position of a type expression relative to its parent
type typeContext uint8

const (
	ctxDecl typeContext = iota
	ctxVariant
	ctxField
	ctxElement
	ctxMapKey
)

type compiler struct {
	parsed   *syntax.Schema
	errors   []*Error
	warnings []*Warning

	// Set by registerDecls()
	declsByName map[string]syntax.Decl
}

func (c *compiler) compileSchema() {
	c.registerDecls()
	for _, decl := range c.parsed.Decls() {
		switch decl := decl.(type) {
		case *syntax.UserDefinedEnum:
			c.compileEnum(decl)
		case *syntax.UserDefinedType:
			c.compileType(decl.Type(), ctxDecl)
		}
	}
	c.checkRecursion()
}

func (c *compiler) registerDecls() {
	for _, decl := range c.parsed.Decls() {
		if prev, ok := c.declsByName[decl.Name()]; ok {
			c.errors = append(c.errors, errDuplicateDecl(decl.Name(), decl.Pos(), prev.Pos()))
			continue
		}
		c.declsByName[decl.Name()] = decl
	}
}

func (c *compiler) compileEnum(enum *syntax.UserDefinedEnum) {
	maxValue := enumWidthMax[enum.Width()]
	names := make(map[string]*syntax.EnumValue)
	values := make(map[uint64]*syntax.EnumValue)
	for _, value := range enum.Values() {
		if prev, ok := names[value.Name()]; ok {
			c.errors = append(c.errors, errDuplicateEnumName(
				enum.Name(), value.Name(), value.Pos(), prev.Pos(),
			))
			continue
		}
		names[value.Name()] = value

		if value.Value() > maxValue {
			c.errors = append(c.errors, errEnumValueRange(
				enum.Name(), value.Name(), value.Value(), enum.Width(), value.Pos(),
			))
			continue
		}
		if prev, ok := values[value.Value()]; ok {
			c.errors = append(c.errors, errDuplicateEnumValue(
				enum.Name(), value.Name(), prev.Name(), value.Value(), value.Pos(),
			))
			continue
		}
		values[value.Value()] = value
	}
}

func (c *compiler) compileType(typ syntax.Type, ctx typeContext) {
	switch typ := typ.(type) {
	case *syntax.PrimitiveType:
		if typ.Kind() == syntax.KindVoid && ctx != ctxDecl && ctx != ctxVariant {
			c.errors = append(c.errors, errVoidNotAllowed(typ.Pos()))
		}
	case *syntax.NamedUserType:
		if _, ok := c.declsByName[typ.Name()]; !ok {
			c.errors = append(c.errors, errUnknownType(typ.Name(), typ.Pos()))
		}
	case *syntax.DataType:
	case *syntax.OptionalType:
		c.compileType(typ.Inner(), ctxElement)
	case *syntax.ArrayType:
		c.compileType(typ.Member(), ctxElement)
	case *syntax.MapType:
		if c.isValidMapKey(typ.Key()) {
			c.compileType(typ.Key(), ctxMapKey)
		} else {
			c.errors = append(c.errors, errInvalidMapKey(typ.Key()))
		}
		c.compileType(typ.Value(), ctxElement)
	case *syntax.UnionType:
		c.compileUnion(typ)
	case *syntax.StructType:
		c.compileStruct(typ)
	}
}

func (c *compiler) compileUnion(union *syntax.UnionType) {
	variants := union.Variants()
	if len(variants) == 1 {
		c.warnings = append(c.warnings, warnSingleVariantUnion(union.Pos()))
	}
	tags := make(map[uint64]*syntax.UnionVariant, len(variants))
	for _, variant := range variants {
		if prev, ok := tags[variant.Tag()]; ok {
			c.errors = append(c.errors, errDuplicateUnionTag(
				variant.Tag(), variant.Pos(), prev.Pos(),
			))
		} else {
			tags[variant.Tag()] = variant
		}
		c.compileType(variant.Type(), ctxVariant)
	}
}

func (c *compiler) compileStruct(st *syntax.StructType) {
	fields := st.Fields()
	if len(fields) == 0 {
		c.warnings = append(c.warnings, warnEmptyStruct(st.Pos()))
	}
	names := make(map[string]*syntax.StructField, len(fields))
	for _, field := range fields {
		if prev, ok := names[field.Name()]; ok {
			c.errors = append(c.errors, errDuplicateField(
				field.Name(), field.Pos(), prev.Pos(),
			))
		} else {
			names[field.Name()] = field
		}
		c.compileType(field.Type(), ctxField)
	}
}

// Map keys must be scalars with a canonical encoding: integers, bool,
// string, enums, or aliases of those.
func (c *compiler) isValidMapKey(key syntax.Type) bool {
	seen := make(map[string]struct{})
	for {
		switch typ := key.(type) {
		case *syntax.PrimitiveType:
			switch typ.Kind() {
			case syntax.KindF32, syntax.KindF64, syntax.KindVoid:
				return false
			}
			return true
		case *syntax.NamedUserType:
			if _, ok := seen[typ.Name()]; ok {
				// alias cycle, reported by checkRecursion()
				return true
			}
			seen[typ.Name()] = struct{}{}
			switch decl := c.declsByName[typ.Name()].(type) {
			case *syntax.UserDefinedEnum:
				return true
			case *syntax.UserDefinedType:
				key = decl.Type()
				continue
			}
			// unknown type, reported by compileType()
			return true
		}
		return false
	}
}

func (c *compiler) checkRecursion() {
	for _, decl := range c.parsed.Decls() {
		udt, ok := decl.(*syntax.UserDefinedType)
		if !ok || c.declsByName[udt.Name()] != decl {
			continue
		}
		seen := make(map[string]struct{})
		if path := c.findCycle(udt.Name(), udt.Type(), seen, []string{udt.Name()}); path != nil {
			c.errors = append(c.errors, errRecursiveType(path, udt.Pos()))
		}
	}
}

func (c *compiler) findCycle(start string, typ syntax.Type, seen map[string]struct{}, path []string) []string {
	for ref := range valueRefs(typ) {
		name := ref.Name()
		if name == start {
			return append(slices.Clone(path), name)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		decl, ok := c.declsByName[name].(*syntax.UserDefinedType)
		if !ok {
			continue
		}
		if found := c.findCycle(start, decl.Type(), seen, append(slices.Clone(path), name)); found != nil {
			return found
		}
	}
	return nil
}

// valueRefs yields the type references that are stored inline in a value of
// typ. References behind optional, slice, map, or union indirection are not
// included, since those can be empty.
func valueRefs(typ syntax.Type) iter.Seq[*syntax.NamedUserType] {
	return func(yield func(*syntax.NamedUserType) bool) {
		walkValueRefs(typ, yield)
	}
}

func walkValueRefs(typ syntax.Type, yield func(*syntax.NamedUserType) bool) bool {
	switch typ := typ.(type) {
	case *syntax.NamedUserType:
		return yield(typ)
	case *syntax.ArrayType:
		if typ.Length() > 0 {
			return walkValueRefs(typ.Member(), yield)
		}
	case *syntax.StructType:
		for _, field := range typ.Fields() {
			if !walkValueRefs(field.Type(), yield) {
				return false
			}
		}
	}
	return true
}
