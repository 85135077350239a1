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

package bare_test

import (
	"bytes"
	"errors"
	"testing"

	"go.nobloat.org/bare"
	"go.nobloat.org/bare/internal/testutil"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	five := uint8(5)
	buf := encode(t, func(e *bare.Encoder) error {
		if err := bare.EncodeOptional(e, nil, (*bare.Encoder).U8); err != nil {
			return err
		}
		return bare.EncodeOptional(e, &five, (*bare.Encoder).U8)
	})
	testutil.ExpectBytesEq(t, []byte{0x00, 0x01, 0x05}, buf)

	d := decoder(buf)
	absent, err := bare.DecodeOptional(d, (*bare.Decoder).U8)
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, absent == nil)
	present, err := bare.DecodeOptional(d, (*bare.Decoder).U8)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 5, *present)

	present, err = bare.DecodeOptional(decoder([]byte{0x03, 0x07}), (*bare.Decoder).U8)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 7, *present)

	_, err = bare.DecodeOptional(decoder([]byte{0x01}), (*bare.Decoder).U8)
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
}

func TestArray(t *testing.T) {
	t.Parallel()

	values := [3]uint16{1, 2, 0x0300}
	buf := encode(t, func(e *bare.Encoder) error {
		return bare.EncodeArray(e, values[:], len(values), (*bare.Encoder).U16)
	})
	testutil.ExpectBytesEq(t, []byte{0x01, 0x00, 0x02, 0x00, 0x00, 0x03}, buf)

	var got [3]uint16
	testutil.AssertNoError(t, bare.DecodeArray(decoder(buf), got[:], (*bare.Decoder).U16))
	testutil.ExpectEq(t, values, got)

	var out bytes.Buffer
	err := bare.EncodeArray(bare.NewEncoder(&out), values[:2], 3, (*bare.Encoder).U16)
	testutil.ExpectErrorIs(t, bare.ErrInvalidValue, err)
	testutil.ExpectEq(t, 0, out.Len())
}

func TestSlice(t *testing.T) {
	t.Parallel()

	buf := encode(t, func(e *bare.Encoder) error {
		return bare.EncodeSlice(e, []string{"a", "bc"}, (*bare.Encoder).String)
	})
	testutil.ExpectBytesEq(t, []byte{0x02, 0x01, 'a', 0x02, 'b', 'c'}, buf)

	got, err := bare.DecodeSlice(decoder(buf), (*bare.Decoder).String)
	testutil.AssertNoError(t, err)
	testutil.ExpectSliceEq(t, []string{"a", "bc"}, got)

	empty, err := bare.DecodeSlice(decoder([]byte{0x00}), (*bare.Decoder).String)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(empty))
}

func TestSliceLimit(t *testing.T) {
	t.Parallel()

	_, err := bare.DecodeSlice(
		decoder([]byte{0x02, 0x01, 0x02}, bare.WithMaxSliceLength(1)),
		(*bare.Decoder).U8,
	)
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)

	var out bytes.Buffer
	e := bare.NewEncoder(&out, bare.WithMaxSliceLength(1))
	err = bare.EncodeSlice(e, []uint8{1, 2}, (*bare.Encoder).U8)
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)

	// The count is checked before elements are read, and the decoder does
	// not reserve the full count up front.
	_, err = bare.DecodeSlice(decoder([]byte{0x80, 0x94, 0xEB, 0xDC, 0x03}), (*bare.Decoder).U64)
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
}

func TestMapDeterministic(t *testing.T) {
	t.Parallel()

	m := map[string]uint8{"b": 2, "a": 1, "c": 3}
	want := []byte{0x03, 0x01, 'a', 0x01, 0x01, 'b', 0x02, 0x01, 'c', 0x03}
	for range 10 {
		buf := encode(t, func(e *bare.Encoder) error {
			return bare.EncodeMap(e, m, (*bare.Encoder).String, (*bare.Encoder).U8)
		})
		testutil.ExpectBytesEq(t, want, buf)
	}

	got, err := bare.DecodeMap(decoder(want), (*bare.Decoder).String, (*bare.Decoder).U8)
	testutil.AssertNoError(t, err)
	testutil.ExpectMapEq(t, m, got)
}

func TestMapKeyOrderIsByEncodedBytes(t *testing.T) {
	t.Parallel()

	m := map[uint64]bool{128: true, 1: false}
	buf := encode(t, func(e *bare.Encoder) error {
		return bare.EncodeMap(e, m, (*bare.Encoder).Uint, (*bare.Encoder).Bool)
	})
	testutil.ExpectBytesEq(t, []byte{0x02, 0x01, 0x00, 0x80, 0x01, 0x01}, buf)
}

func TestMapLimit(t *testing.T) {
	t.Parallel()

	_, err := bare.DecodeMap(
		decoder([]byte{0x05}, bare.WithMaxMapLength(4)),
		(*bare.Decoder).U8,
		(*bare.Decoder).U8,
	)
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)
}

var unionEncoders = map[uint64]bare.EncodeFunc[any]{
	0: bare.UnionEncoder((*bare.Encoder).U8),
	1: bare.UnionEncoder((*bare.Encoder).String),
}

var unionDecoders = map[uint64]bare.DecodeFunc[any]{
	0: bare.UnionDecoder((*bare.Decoder).U8),
	1: bare.UnionDecoder((*bare.Decoder).String),
}

func TestUnion(t *testing.T) {
	t.Parallel()

	buf := encode(t, func(e *bare.Encoder) error {
		return bare.EncodeUnion(e, 1, "hi", unionEncoders)
	})
	testutil.ExpectBytesEq(t, []byte{0x01, 0x02, 'h', 'i'}, buf)

	tag, value, err := bare.DecodeUnion(decoder(buf), unionDecoders)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, tag)
	testutil.ExpectEq[any](t, "hi", value)
}

func TestUnionErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := bare.EncodeUnion(bare.NewEncoder(&out), 7, uint8(1), unionEncoders)
	testutil.ExpectErrorIs(t, bare.ErrUnmappedUnionTag, err)
	testutil.ExpectFalse(t, errors.Is(err, bare.ErrUnknownUnionTag))
	testutil.ExpectEq(t, 0, out.Len())

	err = bare.EncodeUnion(bare.NewEncoder(&out), 0, "not a u8", unionEncoders)
	testutil.ExpectErrorIs(t, bare.ErrInvalidValue, err)
	testutil.ExpectMatch(t, `expected uint8$`, err.Error())

	marshalers := map[uint64]bare.EncodeFunc[any]{
		0: bare.UnionEncoder(bare.EncodeMarshaler[bare.Marshaler]),
	}
	err = bare.EncodeUnion(bare.NewEncoder(&out), 0, 42, marshalers)
	testutil.ExpectErrorIs(t, bare.ErrInvalidValue, err)
	testutil.ExpectMatch(t, `^E5007: Union value has type int, expected bare\.Marshaler$`, err.Error())

	_, _, err = bare.DecodeUnion(decoder([]byte{0x05, 0x00}), unionDecoders)
	testutil.ExpectErrorIs(t, bare.ErrUnknownUnionTag, err)
	testutil.ExpectFalse(t, errors.Is(err, bare.ErrUnmappedUnionTag))
	testutil.ExpectMatch(t, `^E5005: Unknown union tag 5$`, err.Error())
}

type point struct {
	X, Y int32
}

func (p point) Encode(e *bare.Encoder) error {
	if err := e.I32(p.X); err != nil {
		return err
	}
	return e.I32(p.Y)
}

func decodePoint(d *bare.Decoder) (point, error) {
	var p point
	var err error
	if p.X, err = d.I32(); err != nil {
		return p, err
	}
	p.Y, err = d.I32()
	return p, err
}

func TestMarshalUnmarshal(t *testing.T) {
	t.Parallel()

	buf, err := bare.Marshal(point{X: 1, Y: -1})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, buf)

	got, err := bare.Unmarshal(buf, decodePoint)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, point{X: 1, Y: -1}, got)

	_, err = bare.Unmarshal(append(buf, 0x00), decodePoint)
	testutil.ExpectErrorIs(t, bare.ErrTrailingData, err)
}

func TestEncodeMarshalerElements(t *testing.T) {
	t.Parallel()

	points := []point{{1, 2}, {3, 4}}
	buf := encode(t, func(e *bare.Encoder) error {
		return bare.EncodeSlice(e, points, bare.EncodeMarshaler[point])
	})
	got, err := bare.Unmarshal(buf, func(d *bare.Decoder) ([]point, error) {
		return bare.DecodeSlice(d, decodePoint)
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectSliceEq(t, points, got)
}

func TestInvalidEnumValue(t *testing.T) {
	t.Parallel()

	err := bare.InvalidEnumValue("Department", 42)
	testutil.ExpectErrorIs(t, bare.ErrInvalidEnumValue, err)
	testutil.ExpectEq(t, "E5006: Value 42 is not a member of enum Department", err.Error())

	var codeErr *bare.Error
	if !errors.As(err, &codeErr) {
		t.Fatalf("Expected *bare.Error, got: %T", err)
	}
	testutil.ExpectEq(t, 5006, codeErr.Code())
}
