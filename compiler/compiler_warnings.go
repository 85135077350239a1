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

	"go.nobloat.org/bare/syntax"
)

type Warning struct {
	code    uint32
	message string
	pos     syntax.Position
}

func (w *Warning) String() string {
	return fmt.Sprintf("W%d: (%s) - %s", w.code, w.pos, w.message)
}

func (w *Warning) Code() uint32 {
	return w.code
}

func (w *Warning) Message() string {
	return w.message
}

func (w *Warning) Position() syntax.Position {
	return w.pos
}

func warnEmptyStruct(pos syntax.Position) *Warning {
	return &Warning{
		code:    4000,
		message: "Struct has no fields",
		pos:     pos,
	}
}

func warnSingleVariantUnion(pos syntax.Position) *Warning {
	return &Warning{
		code:    4001,
		message: "Union has only one variant",
		pos:     pos,
	}
}
