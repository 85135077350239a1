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

package bare

import (
	"fmt"
)

// Error is the error type returned by encoders and decoders.
//
// Errors compare equal under [errors.Is] when their codes match, so callers
// can test against the exported sentinels:
//
//	if errors.Is(err, bare.ErrLimitExceeded) { ... }
type Error struct {
	code    uint32
	message string
	cause   error
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("E%d: %s: %v", err.code, err.message, err.cause)
	}
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Unwrap() error {
	return err.cause
}

func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.code == err.code
}

var (
	ErrUnexpectedEOF    = &Error{code: 5000, message: "Unexpected end of stream"}
	ErrIO               = &Error{code: 5001, message: "I/O error"}
	ErrLimitExceeded    = &Error{code: 5002, message: "Length limit exceeded"}
	ErrInvalidUTF8      = &Error{code: 5003, message: "Invalid UTF-8"}
	ErrUnmappedUnionTag = &Error{code: 5004, message: "Union tag has no encoder"}
	ErrUnknownUnionTag  = &Error{code: 5005, message: "Unknown union tag"}
	ErrInvalidEnumValue = &Error{code: 5006, message: "Invalid enum value"}
	ErrInvalidValue     = &Error{code: 5007, message: "Invalid value"}
	ErrTrailingData     = &Error{code: 5008, message: "Trailing data"}
)

func errUnexpectedEOF(cause error) error {
	return &Error{
		code:    5000,
		message: "Unexpected end of stream",
		cause:   cause,
	}
}

func errIO(cause error) error {
	return &Error{
		code:    5001,
		message: "I/O error",
		cause:   cause,
	}
}

func errLengthLimit(kind string, length, limit uint64) error {
	return &Error{
		code: 5002,
		message: fmt.Sprintf(
			"%s length %d exceeds limit %d",
			kind, length, limit,
		),
	}
}

func errVarintOverflow() error {
	return &Error{
		code:    5002,
		message: "Varint exceeds 64 bits",
	}
}

func errInvalidUTF8() error {
	return &Error{
		code:    5003,
		message: "String is not valid UTF-8",
	}
}

func errUnmappedUnionTag(tag uint64) error {
	return &Error{
		code:    5004,
		message: fmt.Sprintf("No encoder registered for union tag %d", tag),
	}
}

func errUnknownUnionTag(tag uint64) error {
	return &Error{
		code:    5005,
		message: fmt.Sprintf("Unknown union tag %d", tag),
	}
}

// InvalidEnumValue returns an [ErrInvalidEnumValue] error naming the enum
// type. Generated code calls it when a value is not one of the declared
// members.
func InvalidEnumValue(typeName string, value uint64) error {
	return &Error{
		code:    5006,
		message: fmt.Sprintf("Value %d is not a member of enum %s", value, typeName),
	}
}

func errArrayLength(want, got int) error {
	return &Error{
		code:    5007,
		message: fmt.Sprintf("Fixed array requires %d values, got %d", want, got),
	}
}

func errUnionValueType(want string, value any) error {
	return &Error{
		code:    5007,
		message: fmt.Sprintf("Union value has type %T, expected %s", value, want),
	}
}

func errTrailingData(n int) error {
	return &Error{
		code:    5008,
		message: fmt.Sprintf("%d bytes remain after decoded value", n),
	}
}
