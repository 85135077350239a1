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
	"encoding/binary"
	"errors"
	"io"
	"math"
	"runtime"
	"testing"

	"go.nobloat.org/bare"
	"go.nobloat.org/bare/internal/testutil"
)

func encode(t *testing.T, fn func(e *bare.Encoder) error, opts ...bare.Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	testutil.AssertNoError(t, fn(bare.NewEncoder(&buf, opts...)))
	return buf.Bytes()
}

func decoder(buf []byte, opts ...bare.Option) *bare.Decoder {
	return bare.NewDecoder(bytes.NewReader(buf), opts...)
}

func TestFixedWidth(t *testing.T) {
	t.Parallel()

	testutil.ExpectBytesEq(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, encode(t, func(e *bare.Encoder) error {
		return e.U32(0xDEADBEEF)
	}))
	testutil.ExpectBytesEq(t, []byte{0x34, 0x12}, encode(t, func(e *bare.Encoder) error {
		return e.U16(0x1234)
	}))
	testutil.ExpectBytesEq(t, []byte{0xFF}, encode(t, func(e *bare.Encoder) error {
		return e.I8(-1)
	}))
	testutil.ExpectBytesEq(t, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, encode(t, func(e *bare.Encoder) error {
		return e.I64(-2)
	}))
	testutil.ExpectBytesEq(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, encode(t, func(e *bare.Encoder) error {
		return e.F64(1.0)
	}))
	testutil.ExpectBytesEq(t, []byte{0, 0, 0x80, 0x3F}, encode(t, func(e *bare.Encoder) error {
		return e.F32(1.0)
	}))

	d := decoder([]byte{0xEF, 0xBE, 0xAD, 0xDE, 0x34, 0x12, 0xFF})
	u32, err := d.U32()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0xDEADBEEF, u32)
	u16, err := d.U16()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0x1234, u16)
	i8, err := d.I8()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, -1, i8)
}

func TestFloatBitPatterns(t *testing.T) {
	t.Parallel()

	nan := math.Float64frombits(0x7FF8000000000001)
	buf := encode(t, func(e *bare.Encoder) error {
		return e.F64(nan)
	})
	got, err := decoder(buf).F64()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, uint64(0x7FF8000000000001), math.Float64bits(got))
}

func TestBool(t *testing.T) {
	t.Parallel()

	testutil.ExpectBytesEq(t, []byte{0x01, 0x00}, encode(t, func(e *bare.Encoder) error {
		if err := e.Bool(true); err != nil {
			return err
		}
		return e.Bool(false)
	}))

	d := decoder([]byte{0x01, 0x00, 0x02})
	v, err := d.Bool()
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, v)
	v, err = d.Bool()
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, v)
	v, err = d.Bool()
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, v)
}

func TestUint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint64
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}
	for _, test := range tests {
		testutil.ExpectBytesEq(t, test.bytes, encode(t, func(e *bare.Encoder) error {
			return e.Uint(test.value)
		}))
		got, err := decoder(test.bytes).Uint()
		testutil.AssertNoError(t, err)
		testutil.ExpectEq(t, test.value, got)
	}
}

func TestUintOverflow(t *testing.T) {
	t.Parallel()

	tests := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01},
	}
	for _, buf := range tests {
		_, err := decoder(buf).Uint()
		testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int64
		bytes []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{-2, []byte{0x03}},
		{63, []byte{0x7E}},
		{-64, []byte{0x7F}},
		{64, []byte{0x80, 0x01}},
		{math.MinInt64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}
	for _, test := range tests {
		testutil.ExpectBytesEq(t, test.bytes, encode(t, func(e *bare.Encoder) error {
			return e.Int(test.value)
		}))
		got, err := decoder(test.bytes).Int()
		testutil.AssertNoError(t, err)
		testutil.ExpectEq(t, test.value, got)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	const hello = "こんにちは、世界！"
	buf := encode(t, func(e *bare.Encoder) error {
		return e.String(hello)
	})
	testutil.ExpectEq(t, 1+len(hello), len(buf))
	testutil.ExpectEq(t, byte(len(hello)), buf[0])

	got, err := decoder(buf).String()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, hello, got)
}

func TestStringInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := decoder([]byte{0x02, 0xC3, 0x28}).String()
	testutil.ExpectErrorIs(t, bare.ErrInvalidUTF8, err)

	var buf bytes.Buffer
	err = bare.NewEncoder(&buf).String("\xC3\x28")
	testutil.ExpectErrorIs(t, bare.ErrInvalidUTF8, err)
	testutil.ExpectEq(t, 0, buf.Len())
}

func TestData(t *testing.T) {
	t.Parallel()

	buf := encode(t, func(e *bare.Encoder) error {
		if err := e.Data([]byte{0xCA, 0xFE}); err != nil {
			return err
		}
		return e.DataFixed([]byte{0x01, 0x02, 0x03})
	})
	testutil.ExpectBytesEq(t, []byte{0x02, 0xCA, 0xFE, 0x01, 0x02, 0x03}, buf)

	d := decoder(buf)
	data, err := d.Data()
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0xCA, 0xFE}, data)
	var fixed [3]byte
	testutil.AssertNoError(t, d.DataFixed(fixed[:]))
	testutil.ExpectEq(t, [3]byte{1, 2, 3}, fixed)
}

func TestLengthLimits(t *testing.T) {
	t.Parallel()

	_, err := decoder([]byte{0x03, 'a', 'b', 'c'}, bare.WithMaxStringLength(2)).String()
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)

	_, err = decoder([]byte{0x03, 1, 2, 3}, bare.WithMaxDataLength(2)).Data()
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)

	// A forged prefix above the default limit fails before any allocation.
	_, err = decoder([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}).Data()
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, err)

	var buf bytes.Buffer
	e := bare.NewEncoder(&buf, bare.WithLimits(bare.Limits{MaxDataLength: 1}))
	testutil.ExpectErrorIs(t, bare.ErrLimitExceeded, e.Data([]byte{1, 2}))
	testutil.ExpectEq(t, 0, buf.Len())
	testutil.ExpectEq(t, 0, e.Limits().MaxStringLength)
}

func TestForgedLengthPrefix(t *testing.T) {
	prefix := binary.AppendUvarint(nil, 900_000_000)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	_, err := decoder(append(prefix, 'a', 'b')).Data()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
	_, err = decoder(append(prefix, 'a', 'b')).String()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)

	runtime.ReadMemStats(&after)
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > 1<<20 {
		t.Errorf("decoding a forged length prefix allocated %d bytes", allocated)
	}
}

func TestLargeData(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("bare"), 5000)
	buf := encode(t, func(e *bare.Encoder) error { return e.Data(payload) })

	got, err := decoder(buf).Data()
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, payload, got)

	buf = encode(t, func(e *bare.Encoder) error { return e.String(string(payload)) })
	s, err := decoder(buf).String()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, string(payload), s)

	_, err = decoder(buf[:len(buf)-1]).String()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
}

func TestDefaultLimits(t *testing.T) {
	t.Parallel()

	limits := bare.NewDecoder(bytes.NewReader(nil)).Limits()
	testutil.ExpectEq(t, bare.DefaultLimits(), limits)
	testutil.ExpectEq(t, bare.DefaultMaxLength, limits.MaxSliceLength)
}

func TestUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, err := decoder(nil).U8()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
	testutil.ExpectTrue(t, errors.Is(err, io.EOF))

	_, err = decoder([]byte{0x01, 0x02}).U32()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)

	_, err = decoder([]byte{0x80}).Uint()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)

	_, err = decoder([]byte{0x04, 'a'}).String()
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
}

func TestDecoderNoReadAhead(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte{0xAC, 0x02, 0x01, 'x', 0x07})
	// Hide io.ByteReader so the decoder reads through io.Reader only.
	d := bare.NewDecoder(struct{ io.Reader }{r})

	n, err := d.Uint()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 300, n)
	s, err := d.String()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "x", s)
	testutil.ExpectEq(t, 1, r.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncoderIOError(t *testing.T) {
	t.Parallel()

	err := bare.NewEncoder(failingWriter{}).U64(1)
	testutil.ExpectErrorIs(t, bare.ErrIO, err)
	testutil.ExpectMatch(t, `^E5001: I/O error: disk full$`, err.Error())
}
