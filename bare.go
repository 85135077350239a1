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

// Package bare implements the BARE binary message encoding.
//
// Values are written in declaration order with no framing, field names, or
// type information. An [Encoder] writes primitives to an [io.Writer] and a
// [Decoder] reads them back from an [io.Reader]. Aggregates (optionals,
// arrays, slices, maps, and unions) are built from the generic combinators
// in this package, which generated code calls with per-element functions.
package bare

import (
	"bytes"
)

// DefaultMaxLength is the default upper bound on any length prefix read
// from a stream.
const DefaultMaxLength uint64 = 1_000_000_000

// Aggregates with a length above this are allocated incrementally while
// decoding, so a forged length prefix cannot reserve memory on its own.
const preallocLimit = 4096

// Limits bound the length prefixes accepted by an [Encoder] or [Decoder].
//
// Each limit applies to a different kind of value. A zero value in a field
// means zero-length values only.
type Limits struct {
	MaxDataLength   uint64
	MaxStringLength uint64
	MaxSliceLength  uint64
	MaxMapLength    uint64
}

// DefaultLimits returns [Limits] with every field set to [DefaultMaxLength].
func DefaultLimits() Limits {
	return Limits{
		MaxDataLength:   DefaultMaxLength,
		MaxStringLength: DefaultMaxLength,
		MaxSliceLength:  DefaultMaxLength,
		MaxMapLength:    DefaultMaxLength,
	}
}

type Option interface {
	apply(limits *Limits)
}

type limitsOption func(limits *Limits)

func (opt limitsOption) apply(limits *Limits) {
	opt(limits)
}

// WithLimits replaces all limits at once.
func WithLimits(limits Limits) Option {
	return limitsOption(func(dst *Limits) {
		*dst = limits
	})
}

func WithMaxDataLength(n uint64) Option {
	return limitsOption(func(limits *Limits) {
		limits.MaxDataLength = n
	})
}

func WithMaxStringLength(n uint64) Option {
	return limitsOption(func(limits *Limits) {
		limits.MaxStringLength = n
	})
}

func WithMaxSliceLength(n uint64) Option {
	return limitsOption(func(limits *Limits) {
		limits.MaxSliceLength = n
	})
}

func WithMaxMapLength(n uint64) Option {
	return limitsOption(func(limits *Limits) {
		limits.MaxMapLength = n
	})
}

func newLimits(opts []Option) Limits {
	limits := DefaultLimits()
	for _, opt := range opts {
		opt.apply(&limits)
	}
	return limits
}

// Marshaler is implemented by generated message types.
type Marshaler interface {
	Encode(e *Encoder) error
}

// Marshal encodes v into a new buffer.
func Marshal(v Marshaler, opts ...Option) ([]uint8, error) {
	var buf bytes.Buffer
	if err := v.Encode(NewEncoder(&buf, opts...)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a single value from buf. Bytes left over after the value
// are reported as [ErrTrailingData].
func Unmarshal[T any](buf []uint8, decode DecodeFunc[T], opts ...Option) (T, error) {
	r := bytes.NewReader(buf)
	v, err := decode(NewDecoder(r, opts...))
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Len() > 0 {
		var zero T
		return zero, errTrailingData(r.Len())
	}
	return v, nil
}
