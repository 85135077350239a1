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

package compiler

import (
	"fmt"
	"strings"

	"go.nobloat.org/bare/syntax"
)

type Error struct {
	code    uint32
	message string
	pos     syntax.Position
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: (%s) - %s", err.code, err.pos, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Position() syntax.Position {
	return err.pos
}

func errDuplicateDecl(name string, pos, prev syntax.Position) *Error {
	return &Error{
		code: 3000,
		message: fmt.Sprintf(
			"Duplicate declaration of '%s' (previously declared at %s)",
			name, prev,
		),
		pos: pos,
	}
}

func errUnknownType(name string, pos syntax.Position) *Error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Unknown type '%s'", name),
		pos:     pos,
	}
}

func errDuplicateField(name string, pos, prev syntax.Position) *Error {
	return &Error{
		code: 3002,
		message: fmt.Sprintf(
			"Duplicate struct field '%s' (previously declared at %s)",
			name, prev,
		),
		pos: pos,
	}
}

func errDuplicateEnumName(enum, name string, pos, prev syntax.Position) *Error {
	return &Error{
		code: 3003,
		message: fmt.Sprintf(
			"Duplicate value name '%s' in enum '%s' (previously declared at %s)",
			name, enum, prev,
		),
		pos: pos,
	}
}

func errDuplicateEnumValue(enum, name, prevName string, value uint64, pos syntax.Position) *Error {
	return &Error{
		code: 3004,
		message: fmt.Sprintf(
			"Enum '%s' value '%s' has the same value (%d) as '%s'",
			enum, name, value, prevName,
		),
		pos: pos,
	}
}

func errEnumValueRange(enum, name string, value uint64, width syntax.Kind, pos syntax.Position) *Error {
	return &Error{
		code: 3005,
		message: fmt.Sprintf(
			"Enum '%s' value '%s' (%d) does not fit in %s",
			enum, name, value, width,
		),
		pos: pos,
	}
}

func errDuplicateUnionTag(tag uint64, pos, prev syntax.Position) *Error {
	return &Error{
		code: 3006,
		message: fmt.Sprintf(
			"Duplicate union tag %d (previously used at %s)",
			tag, prev,
		),
		pos: pos,
	}
}

func errInvalidMapKey(key syntax.Type) *Error {
	return &Error{
		code: 3007,
		message: fmt.Sprintf(
			"Invalid map key type '%s'. Keys must be integers, bool, string, or enums",
			syntax.FormatType(key),
		),
		pos: key.Pos(),
	}
}

func errVoidNotAllowed(pos syntax.Position) *Error {
	return &Error{
		code:    3008,
		message: "Type 'void' is only allowed as a union variant or type declaration",
		pos:     pos,
	}
}

func errRecursiveType(path []string, pos syntax.Position) *Error {
	msg := fmt.Sprintf("Type '%s' contains itself by value", path[0])
	if len(path) > 2 {
		msg += fmt.Sprintf(" (via %s)", strings.Join(path, " -> "))
	}
	return &Error{
		code:    3009,
		message: msg,
		pos:     pos,
	}
}
