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

type Error struct {
	code    uint32
	message string
	pos     Position
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

func (err *Error) Position() Position {
	return err.pos
}

func describeChar(r rune) string {
	if r == EOF {
		return "EOF"
	}
	return fmt.Sprintf("'%s' (U+%04X)", string(r), r)
}

func errInvalidUtf8(pos Position) error {
	return &Error{
		code:    1000,
		message: "Source file contains invalid UTF-8",
		pos:     pos,
	}
}

func errReadFailed(pos Position, err error) error {
	return &Error{
		code:    1001,
		message: fmt.Sprintf("Failed to read source: %v", err),
		pos:     pos,
	}
}

func errUnexpectedCharacter(pos Position, r rune) error {
	return &Error{
		code:    1002,
		message: fmt.Sprintf("Unexpected character %s", describeChar(r)),
		pos:     pos,
	}
}

func errExpectedWord(pos Position, r rune) error {
	return &Error{
		code:    1003,
		message: fmt.Sprintf("Expected a word, found %s", describeChar(r)),
		pos:     pos,
	}
}

func errExpectedInteger(pos Position, r rune) error {
	return &Error{
		code:    1004,
		message: fmt.Sprintf("Expected an integer, found %s", describeChar(r)),
		pos:     pos,
	}
}

func errUnexpectedToken(tok Token, required string) error {
	return &Error{
		code: 2000,
		message: fmt.Sprintf(
			"Unexpected token '%s'. Required: %s",
			tok, required,
		),
		pos: tok.Pos,
	}
}

func errInvalidName(tok Token, code uint32, pattern string) error {
	return &Error{
		code: code,
		message: fmt.Sprintf(
			"Invalid name '%s'. Must match: %s",
			tok.Text, pattern,
		),
		pos: tok.Pos,
	}
}

func errInvalidTypeName(tok Token) error {
	return errInvalidName(tok, 2001, userTypeNameRegexp.String())
}

func errInvalidFieldName(tok Token) error {
	return errInvalidName(tok, 2002, fieldNameRegexp.String())
}

func errInvalidEnumName(tok Token) error {
	return errInvalidName(tok, 2003, userTypeNameRegexp.String())
}

func errInvalidEnumValueName(tok Token) error {
	return errInvalidName(tok, 2004, enumValueNameRegexp.String())
}

func errIntegerOutOfRange(tok Token) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("Integer '%s' does not fit in 64 bits", tok.Text),
		pos:     tok.Pos,
	}
}

func errZeroLength(tok Token) error {
	return &Error{
		code:    2006,
		message: "Fixed length must be greater than zero",
		pos:     tok.Pos,
	}
}

func errImplicitValueOverflow(tok Token) error {
	return &Error{
		code: 2007,
		message: fmt.Sprintf(
			"Implicit value for '%s' does not fit in 64 bits",
			tok.Text,
		),
		pos: tok.Pos,
	}
}
