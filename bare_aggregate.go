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
	"reflect"
	"slices"
)

// EncodeFunc writes one value of type T. Methods of [Encoder] can be used
// directly as method expressions, for example (*Encoder).U32.
type EncodeFunc[T any] func(e *Encoder, v T) error

// DecodeFunc reads one value of type T. Methods of [Decoder] can be used
// directly as method expressions, for example (*Decoder).String.
type DecodeFunc[T any] func(d *Decoder) (T, error)

// EncodeMarshaler adapts a [Marshaler] to an [EncodeFunc].
func EncodeMarshaler[T Marshaler](e *Encoder, v T) error {
	return v.Encode(e)
}

// EncodeOptional writes a presence flag followed by *v when v is non-nil.
func EncodeOptional[T any](e *Encoder, v *T, encode EncodeFunc[T]) error {
	if v == nil {
		return e.Bool(false)
	}
	if err := e.Bool(true); err != nil {
		return err
	}
	return encode(e, *v)
}

func DecodeOptional[T any](d *Decoder, decode DecodeFunc[T]) (*T, error) {
	present, err := d.Bool()
	if err != nil || !present {
		return nil, err
	}
	v, err := decode(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeArray writes exactly length values with no count prefix.
func EncodeArray[T any](e *Encoder, values []T, length int, encode EncodeFunc[T]) error {
	if len(values) != length {
		return errArrayLength(length, len(values))
	}
	for _, v := range values {
		if err := encode(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeArray reads len(dst) values into dst.
func DecodeArray[T any](d *Decoder, dst []T, decode DecodeFunc[T]) error {
	for ii := range dst {
		v, err := decode(d)
		if err != nil {
			return err
		}
		dst[ii] = v
	}
	return nil
}

// EncodeSlice writes a varint count followed by each value.
func EncodeSlice[T any](e *Encoder, values []T, encode EncodeFunc[T]) error {
	if n := uint64(len(values)); n > e.limits.MaxSliceLength {
		return errLengthLimit("Slice", n, e.limits.MaxSliceLength)
	}
	if err := e.Uint(uint64(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := encode(e, v); err != nil {
			return err
		}
	}
	return nil
}

func DecodeSlice[T any](d *Decoder, decode DecodeFunc[T]) ([]T, error) {
	n, err := d.Uint()
	if err != nil {
		return nil, err
	}
	if n > d.limits.MaxSliceLength {
		return nil, errLengthLimit("Slice", n, d.limits.MaxSliceLength)
	}
	values := make([]T, 0, min(n, preallocLimit))
	for range n {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// EncodeMap writes a varint count followed by key/value pairs. Entries are
// written in the order of their encoded keys, so equal maps always produce
// equal bytes.
func EncodeMap[K comparable, V any](
	e *Encoder,
	m map[K]V,
	encodeKey EncodeFunc[K],
	encodeValue EncodeFunc[V],
) error {
	if n := uint64(len(m)); n > e.limits.MaxMapLength {
		return errLengthLimit("Map", n, e.limits.MaxMapLength)
	}

	type entry struct {
		key   []uint8
		value V
	}
	entries := make([]entry, 0, len(m))
	var keyBuf bytes.Buffer
	keyEncoder := &Encoder{w: &keyBuf, limits: e.limits}
	for k, v := range m {
		keyBuf.Reset()
		if err := encodeKey(keyEncoder, k); err != nil {
			return err
		}
		entries = append(entries, entry{bytes.Clone(keyBuf.Bytes()), v})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return bytes.Compare(a.key, b.key)
	})

	if err := e.Uint(uint64(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := e.write(entry.key); err != nil {
			return err
		}
		if err := encodeValue(e, entry.value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap reads a map. When a key appears more than once, the last value
// wins.
func DecodeMap[K comparable, V any](
	d *Decoder,
	decodeKey DecodeFunc[K],
	decodeValue DecodeFunc[V],
) (map[K]V, error) {
	n, err := d.Uint()
	if err != nil {
		return nil, err
	}
	if n > d.limits.MaxMapLength {
		return nil, errLengthLimit("Map", n, d.limits.MaxMapLength)
	}
	m := make(map[K]V, min(n, preallocLimit))
	for range n {
		k, err := decodeKey(d)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(d)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// EncodeUnion writes tag followed by value, using the encoder registered
// for tag. A tag with no encoder is reported as [ErrUnmappedUnionTag] and
// nothing is written.
func EncodeUnion(e *Encoder, tag uint64, value any, encoders map[uint64]EncodeFunc[any]) error {
	encode, ok := encoders[tag]
	if !ok {
		return errUnmappedUnionTag(tag)
	}
	if err := e.Uint(tag); err != nil {
		return err
	}
	return encode(e, value)
}

// DecodeUnion reads a tag and decodes the value registered for it. A tag with
// no decoder is reported as [ErrUnknownUnionTag].
func DecodeUnion(d *Decoder, decoders map[uint64]DecodeFunc[any]) (uint64, any, error) {
	tag, err := d.Uint()
	if err != nil {
		return 0, nil, err
	}
	decode, ok := decoders[tag]
	if !ok {
		return tag, nil, errUnknownUnionTag(tag)
	}
	value, err := decode(d)
	if err != nil {
		return tag, nil, err
	}
	return tag, value, nil
}

// UnionEncoder adapts a typed [EncodeFunc] for use with [EncodeUnion].
func UnionEncoder[T any](encode EncodeFunc[T]) EncodeFunc[any] {
	return func(e *Encoder, value any) error {
		v, ok := value.(T)
		if !ok {
			return errUnionValueType(reflect.TypeFor[T]().String(), value)
		}
		return encode(e, v)
	}
}

// UnionDecoder adapts a typed [DecodeFunc] for use with [DecodeUnion].
func UnionDecoder[T any](decode DecodeFunc[T]) DecodeFunc[any] {
	return func(d *Decoder) (any, error) {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
