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
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Encoder writes BARE values to an [io.Writer].
//
// An Encoder does no buffering of its own. Methods may have written a
// partial value to the underlying writer when they return an error.
type Encoder struct {
	w      io.Writer
	limits Limits
	buf    [binary.MaxVarintLen64]uint8
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{
		w:      w,
		limits: newLimits(opts),
	}
}

func (e *Encoder) Limits() Limits {
	return e.limits
}

func (e *Encoder) write(buf []uint8) error {
	if _, err := e.w.Write(buf); err != nil {
		return errIO(err)
	}
	return nil
}

func (e *Encoder) U8(v uint8) error {
	e.buf[0] = v
	return e.write(e.buf[:1])
}

func (e *Encoder) U16(v uint16) error {
	binary.LittleEndian.PutUint16(e.buf[:2], v)
	return e.write(e.buf[:2])
}

func (e *Encoder) U32(v uint32) error {
	binary.LittleEndian.PutUint32(e.buf[:4], v)
	return e.write(e.buf[:4])
}

func (e *Encoder) U64(v uint64) error {
	binary.LittleEndian.PutUint64(e.buf[:8], v)
	return e.write(e.buf[:8])
}

func (e *Encoder) I8(v int8) error {
	return e.U8(uint8(v))
}

func (e *Encoder) I16(v int16) error {
	return e.U16(uint16(v))
}

func (e *Encoder) I32(v int32) error {
	return e.U32(uint32(v))
}

func (e *Encoder) I64(v int64) error {
	return e.U64(uint64(v))
}

func (e *Encoder) F32(v float32) error {
	return e.U32(math.Float32bits(v))
}

func (e *Encoder) F64(v float64) error {
	return e.U64(math.Float64bits(v))
}

func (e *Encoder) Bool(v bool) error {
	if v {
		return e.U8(1)
	}
	return e.U8(0)
}

// Uint writes v as an unsigned LEB128 varint.
func (e *Encoder) Uint(v uint64) error {
	n := binary.PutUvarint(e.buf[:], v)
	return e.write(e.buf[:n])
}

// Int writes v as a zig-zag encoded varint.
func (e *Encoder) Int(v int64) error {
	return e.Uint(uint64(v<<1) ^ uint64(v>>63))
}

// Data writes a length-prefixed byte string.
func (e *Encoder) Data(v []uint8) error {
	if n := uint64(len(v)); n > e.limits.MaxDataLength {
		return errLengthLimit("Data", n, e.limits.MaxDataLength)
	}
	if err := e.Uint(uint64(len(v))); err != nil {
		return err
	}
	return e.write(v)
}

// DataFixed writes v with no length prefix. The schema determines its
// length.
func (e *Encoder) DataFixed(v []uint8) error {
	return e.write(v)
}

// String writes a length-prefixed UTF-8 string. Strings that are not valid
// UTF-8 are rejected.
func (e *Encoder) String(v string) error {
	if n := uint64(len(v)); n > e.limits.MaxStringLength {
		return errLengthLimit("String", n, e.limits.MaxStringLength)
	}
	if !utf8.ValidString(v) {
		return errInvalidUTF8()
	}
	if err := e.Uint(uint64(len(v))); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, v); err != nil {
		return errIO(err)
	}
	return nil
}

// Void writes nothing.
func (e *Encoder) Void(struct{}) error {
	return nil
}
