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

func errAnonymousType(kind syntax.Kind, declName string, pos syntax.Position) error {
	return &Error{
		code: 6000,
		message: fmt.Sprintf(
			"Anonymous %s in '%s' is not supported. Declare it as a named type",
			kind, declName,
		),
		pos: pos,
	}
}

func errOptionalAlias(declName string, pos syntax.Position) error {
	return &Error{
		code: 6001,
		message: fmt.Sprintf(
			"Type '%s' is an optional type, which cannot have methods in Go."+
				" Use it as a struct field instead",
			declName,
		),
		pos: pos,
	}
}

func errInvalidPackageName(name string) error {
	return &Error{
		code:    6002,
		message: fmt.Sprintf("Invalid Go package name %q", name),
	}
}

func errRender(err error) error {
	return &Error{
		code:    6003,
		message: fmt.Sprintf("Failed to render Go source: %v", err),
	}
}

func errNameCollision(ident, declName string, pos syntax.Position) error {
	return &Error{
		code: 6004,
		message: fmt.Sprintf(
			"Generated identifier '%s' for '%s' collides with another declaration",
			ident, declName,
		),
		pos: pos,
	}
}
