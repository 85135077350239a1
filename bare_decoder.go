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
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"
)

// Decoder reads BARE values from an [io.Reader].
//
// A Decoder never reads past the end of the value it was asked to decode,
// so several values may be read in sequence from one stream. Readers that
// do not implement [io.ByteReader] are read one byte at a time when
// decoding varints.
type Decoder struct {
	r      io.Reader
	br     io.ByteReader
	limits Limits
	buf    [8]uint8
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:      r,
		limits: newLimits(opts),
	}
	if br, ok := r.(io.ByteReader); ok {
		d.br = br
	} else {
		d.br = &byteReader{r: r}
	}
	return d
}

type byteReader struct {
	r   io.Reader
	buf [1]uint8
}

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		return 0, err
	}
	return br.buf[0], nil
}

func (d *Decoder) Limits() Limits {
	return d.limits
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errUnexpectedEOF(err)
	}
	return errIO(err)
}

func (d *Decoder) readFull(buf []uint8) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return readErr(err)
	}
	return nil
}

// readLength reads n payload bytes. Payloads above preallocLimit grow with
// the bytes actually received.
func (d *Decoder) readLength(n uint64) ([]uint8, error) {
	if n <= preallocLimit {
		buf := make([]uint8, n)
		if err := d.readFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	var buf bytes.Buffer
	buf.Grow(preallocLimit)
	if _, err := io.CopyN(&buf, d.r, int64(min(n, math.MaxInt64))); err != nil {
		return nil, readErr(err)
	}
	return buf.Bytes(), nil
}

func (d *Decoder) U8() (uint8, error) {
	b, err := d.br.ReadByte()
	if err != nil {
		return 0, readErr(err)
	}
	return b, nil
}

func (d *Decoder) U16() (uint16, error) {
	if err := d.readFull(d.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d.buf[:2]), nil
}

func (d *Decoder) U32() (uint32, error) {
	if err := d.readFull(d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.buf[:4]), nil
}

func (d *Decoder) U64() (uint64, error) {
	if err := d.readFull(d.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d.buf[:8]), nil
}

func (d *Decoder) I8() (int8, error) {
	v, err := d.U8()
	return int8(v), err
}

func (d *Decoder) I16() (int16, error) {
	v, err := d.U16()
	return int16(v), err
}

func (d *Decoder) I32() (int32, error) {
	v, err := d.U32()
	return int32(v), err
}

func (d *Decoder) I64() (int64, error) {
	v, err := d.U64()
	return int64(v), err
}

func (d *Decoder) F32() (float32, error) {
	v, err := d.U32()
	return math.Float32frombits(v), err
}

func (d *Decoder) F64() (float64, error) {
	v, err := d.U64()
	return math.Float64frombits(v), err
}

// Bool reads a single byte. Any nonzero value is true.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.U8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Uint reads an unsigned LEB128 varint. Encodings that would not fit in 64
// bits are rejected with [ErrLimitExceeded].
func (d *Decoder) Uint() (uint64, error) {
	var x uint64
	var shift uint
	for ii := 0; ; ii++ {
		b, err := d.U8()
		if err != nil {
			return 0, err
		}
		if ii == binary.MaxVarintLen64-1 && b > 1 {
			return 0, errVarintOverflow()
		}
		if b < 0x80 {
			return x | uint64(b)<<shift, nil
		}
		x |= uint64(b&0x7F) << shift
		shift += 7
	}
}

// Int reads a zig-zag encoded varint.
func (d *Decoder) Int() (int64, error) {
	u, err := d.Uint()
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

// Data reads a length-prefixed byte string. The length is checked against
// [Limits.MaxDataLength] before any payload is read.
func (d *Decoder) Data() ([]uint8, error) {
	n, err := d.Uint()
	if err != nil {
		return nil, err
	}
	if n > d.limits.MaxDataLength {
		return nil, errLengthLimit("Data", n, d.limits.MaxDataLength)
	}
	return d.readLength(n)
}

// DataFixed fills dst from the stream.
func (d *Decoder) DataFixed(dst []uint8) error {
	return d.readFull(dst)
}

func (d *Decoder) String() (string, error) {
	n, err := d.Uint()
	if err != nil {
		return "", err
	}
	if n > d.limits.MaxStringLength {
		return "", errLengthLimit("String", n, d.limits.MaxStringLength)
	}
	buf, err := d.readLength(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", errInvalidUTF8()
	}
	return string(buf), nil
}

func (d *Decoder) Void() (struct{}, error) {
	return struct{}{}, nil
}
