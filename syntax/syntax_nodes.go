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

package syntax

import (
	"fmt"
)

type Kind uint8

const (
	KindUInt Kind = iota
	KindInt
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
	KindString
	KindVoid
	KindData
	KindOptional
	KindArray
	KindMap
	KindUnion
	KindStruct
	KindUserType
)

var kindNames = [...]string{
	KindUInt:     "uint",
	KindInt:      "int",
	KindU8:       "u8",
	KindU16:      "u16",
	KindU32:      "u32",
	KindU64:      "u64",
	KindI8:       "i8",
	KindI16:      "i16",
	KindI32:      "i32",
	KindI64:      "i64",
	KindF32:      "f32",
	KindF64:      "f64",
	KindBool:     "bool",
	KindString:   "string",
	KindVoid:     "void",
	KindData:     "data",
	KindOptional: "optional",
	KindArray:    "array",
	KindMap:      "map",
	KindUnion:    "union",
	KindStruct:   "struct",
	KindUserType: "user type",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsPrimitive reports whether k is a scalar kind with a fixed keyword.
func (k Kind) IsPrimitive() bool {
	return k <= KindVoid
}

// Schema is the parsed form of a schema source: its declarations in source
// order.
type Schema struct {
	decls []Decl
}

func NewSchema(decls []Decl) *Schema {
	return &Schema{decls: decls}
}

func (s *Schema) Decls() []Decl {
	return s.decls
}

// Decl is a top-level declaration: either a [*UserDefinedType] or a
// [*UserDefinedEnum].
type Decl interface {
	Name() string
	Pos() Position
	isDecl()
}

type UserDefinedType struct {
	name string
	typ  Type
	pos  Position
}

func NewUserDefinedType(name string, typ Type, pos Position) *UserDefinedType {
	return &UserDefinedType{name: name, typ: typ, pos: pos}
}

func (*UserDefinedType) isDecl() {}

func (d *UserDefinedType) Name() string {
	return d.name
}

func (d *UserDefinedType) Type() Type {
	return d.typ
}

func (d *UserDefinedType) Pos() Position {
	return d.pos
}

type UserDefinedEnum struct {
	name   string
	width  Kind
	values []*EnumValue
	pos    Position
}

func NewUserDefinedEnum(name string, width Kind, values []*EnumValue, pos Position) *UserDefinedEnum {
	return &UserDefinedEnum{name: name, width: width, values: values, pos: pos}
}

func (*UserDefinedEnum) isDecl() {}

func (d *UserDefinedEnum) Name() string {
	return d.name
}

// Width is the integer kind of the enum's values: [KindUInt] unless the
// declaration names one of u8, u16, u32, or u64.
func (d *UserDefinedEnum) Width() Kind {
	return d.width
}

func (d *UserDefinedEnum) Values() []*EnumValue {
	return d.values
}

func (d *UserDefinedEnum) Pos() Position {
	return d.pos
}

type EnumValue struct {
	name  string
	value uint64
	pos   Position
}

func NewEnumValue(name string, value uint64, pos Position) *EnumValue {
	return &EnumValue{name: name, value: value, pos: pos}
}

func (v *EnumValue) Name() string {
	return v.name
}

func (v *EnumValue) Value() uint64 {
	return v.value
}

func (v *EnumValue) Pos() Position {
	return v.pos
}

// Type is a type expression.
type Type interface {
	Kind() Kind
	Pos() Position
}

type PrimitiveType struct {
	kind Kind
	pos  Position
}

func NewPrimitiveType(kind Kind, pos Position) *PrimitiveType {
	return &PrimitiveType{kind: kind, pos: pos}
}

func (t *PrimitiveType) Kind() Kind {
	return t.kind
}

func (t *PrimitiveType) Pos() Position {
	return t.pos
}

// DataType is `data` when Length is zero, and `data<Length>` otherwise.
type DataType struct {
	length uint64
	pos    Position
}

func NewDataType(length uint64, pos Position) *DataType {
	return &DataType{length: length, pos: pos}
}

func (*DataType) Kind() Kind {
	return KindData
}

func (t *DataType) Length() uint64 {
	return t.length
}

func (t *DataType) Pos() Position {
	return t.pos
}

type OptionalType struct {
	inner Type
	pos   Position
}

func NewOptionalType(inner Type, pos Position) *OptionalType {
	return &OptionalType{inner: inner, pos: pos}
}

func (*OptionalType) Kind() Kind {
	return KindOptional
}

func (t *OptionalType) Inner() Type {
	return t.inner
}

func (t *OptionalType) Pos() Position {
	return t.pos
}

// ArrayType is `[]Member` when Length is zero, and `[Length]Member`
// otherwise.
type ArrayType struct {
	member Type
	length uint64
	pos    Position
}

func NewArrayType(member Type, length uint64, pos Position) *ArrayType {
	return &ArrayType{member: member, length: length, pos: pos}
}

func (*ArrayType) Kind() Kind {
	return KindArray
}

func (t *ArrayType) Member() Type {
	return t.member
}

func (t *ArrayType) Length() uint64 {
	return t.length
}

func (t *ArrayType) Pos() Position {
	return t.pos
}

type MapType struct {
	key   Type
	value Type
	pos   Position
}

func NewMapType(key, value Type, pos Position) *MapType {
	return &MapType{key: key, value: value, pos: pos}
}

func (*MapType) Kind() Kind {
	return KindMap
}

func (t *MapType) Key() Type {
	return t.key
}

func (t *MapType) Value() Type {
	return t.value
}

func (t *MapType) Pos() Position {
	return t.pos
}

type UnionType struct {
	variants []*UnionVariant
	pos      Position
}

func NewUnionType(variants []*UnionVariant, pos Position) *UnionType {
	return &UnionType{variants: variants, pos: pos}
}

func (*UnionType) Kind() Kind {
	return KindUnion
}

func (t *UnionType) Variants() []*UnionVariant {
	return t.variants
}

func (t *UnionType) Pos() Position {
	return t.pos
}

type UnionVariant struct {
	typ Type
	tag uint64
}

func NewUnionVariant(typ Type, tag uint64) *UnionVariant {
	return &UnionVariant{typ: typ, tag: tag}
}

func (v *UnionVariant) Type() Type {
	return v.typ
}

func (v *UnionVariant) Tag() uint64 {
	return v.tag
}

func (v *UnionVariant) Pos() Position {
	return v.typ.Pos()
}

type StructType struct {
	fields []*StructField
	pos    Position
}

func NewStructType(fields []*StructField, pos Position) *StructType {
	return &StructType{fields: fields, pos: pos}
}

func (*StructType) Kind() Kind {
	return KindStruct
}

func (t *StructType) Fields() []*StructField {
	return t.fields
}

func (t *StructType) Pos() Position {
	return t.pos
}

type StructField struct {
	name string
	typ  Type
	pos  Position
}

func NewStructField(name string, typ Type, pos Position) *StructField {
	return &StructField{name: name, typ: typ, pos: pos}
}

func (f *StructField) Name() string {
	return f.name
}

func (f *StructField) Type() Type {
	return f.typ
}

func (f *StructField) Pos() Position {
	return f.pos
}

// NamedUserType is a reference to a declaration by name. The parser does not
// check that the name is declared.
type NamedUserType struct {
	name string
	pos  Position
}

func NewNamedUserType(name string, pos Position) *NamedUserType {
	return &NamedUserType{name: name, pos: pos}
}

func (*NamedUserType) Kind() Kind {
	return KindUserType
}

func (t *NamedUserType) Name() string {
	return t.name
}

func (t *NamedUserType) Pos() Position {
	return t.pos
}
