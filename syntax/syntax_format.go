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
	"io"
	"strings"
)

// Format renders schema in canonical form: one declaration per paragraph,
// tab indentation, and explicit enum values or union tags only where they
// differ from the implicit ones. Comments are not preserved.
func Format(schema *Schema) string {
	var buf strings.Builder
	FormatTo(schema, &buf)
	return buf.String()
}

func FormatTo(schema *Schema, w io.Writer) error {
	f := formatter{w: w}
	for ii, decl := range schema.decls {
		if f.err != nil {
			break
		}
		if ii > 0 {
			f.line("")
		}
		switch decl := decl.(type) {
		case *UserDefinedType:
			f.linef("type %s %s", decl.name, FormatType(decl.typ))
		case *UserDefinedEnum:
			f.visitEnum(decl)
		}
	}
	return f.err
}

type formatter struct {
	w      io.Writer
	indent int
	err    error
}

func (f *formatter) line(s string) {
	if f.err != nil {
		return
	}
	if s != "" {
		s = strings.Repeat("\t", f.indent) + s
	}
	if _, err := io.WriteString(f.w, s+"\n"); err != nil {
		f.err = err
	}
}

func (f *formatter) linef(format string, a ...any) {
	f.line(fmt.Sprintf(format, a...))
}

func (f *formatter) visitEnum(enum *UserDefinedEnum) {
	if enum.width == KindUInt {
		f.linef("enum %s {", enum.name)
	} else {
		f.linef("enum %s %s {", enum.name, enum.width)
	}
	f.indent += 1
	var next uint64
	for _, value := range enum.values {
		if value.value == next {
			f.line(value.name)
		} else {
			f.linef("%s = %d", value.name, value.value)
		}
		next = value.value + 1
	}
	f.indent -= 1
	f.line("}")
}

// FormatType renders a type expression. Struct types span multiple lines,
// with fields indented one tab deeper than the line they start on.
func FormatType(typ Type) string {
	var buf strings.Builder
	writeType(&buf, typ, 0)
	return buf.String()
}

func writeType(buf *strings.Builder, typ Type, indent int) {
	switch typ := typ.(type) {
	case *PrimitiveType:
		buf.WriteString(typ.kind.String())
	case *NamedUserType:
		buf.WriteString(typ.name)
	case *DataType:
		buf.WriteString("data")
		if typ.length > 0 {
			fmt.Fprintf(buf, "<%d>", typ.length)
		}
	case *OptionalType:
		buf.WriteString("optional<")
		writeType(buf, typ.inner, indent)
		buf.WriteString(">")
	case *ArrayType:
		if typ.length > 0 {
			fmt.Fprintf(buf, "[%d]", typ.length)
		} else {
			buf.WriteString("[]")
		}
		writeType(buf, typ.member, indent)
	case *MapType:
		buf.WriteString("map[")
		writeType(buf, typ.key, indent)
		buf.WriteString("]")
		writeType(buf, typ.value, indent)
	case *UnionType:
		buf.WriteString("(")
		var next uint64
		for ii, variant := range typ.variants {
			if ii > 0 {
				buf.WriteString(" | ")
			}
			writeType(buf, variant.typ, indent)
			if variant.tag != next {
				fmt.Fprintf(buf, " = %d", variant.tag)
			}
			next = variant.tag + 1
		}
		buf.WriteString(")")
	case *StructType:
		if len(typ.fields) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for _, field := range typ.fields {
			buf.WriteString(strings.Repeat("\t", indent+1))
			buf.WriteString(field.name)
			buf.WriteString(": ")
			writeType(buf, field.typ, indent+1)
			buf.WriteString("\n")
		}
		buf.WriteString(strings.Repeat("\t", indent))
		buf.WriteString("}")
	default:
		fmt.Fprintf(buf, "<%s>", typ.Kind())
	}
}
