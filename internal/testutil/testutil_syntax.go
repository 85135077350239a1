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

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"testing"

	"go.nobloat.org/bare/syntax"
)

// Diagnostic is an entry in a diagnostics catalog, which maps a stable key
// to an error or warning code and its expected message.
type Diagnostic struct {
	Key     string
	Code    uint32
	Message string
	Pattern *regexp.Regexp
}

// Coded is implemented by the error and warning types of every package.
type Coded interface {
	Code() uint32
	Message() string
}

func LoadDiagnostics(testdata fs.FS, name string) (map[string]*Diagnostic, error) {
	type raw struct {
		Code    uint32 `json:"code"`
		Message string `json:"message"`
		Pattern string `json:"message_pattern"`
	}

	jsonData, err := fs.ReadFile(testdata, fmt.Sprintf("diagnostics/%s.json", name))
	if err != nil {
		return nil, err
	}

	var rawDiagnostics map[string]raw
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&rawDiagnostics); err != nil {
		return nil, err
	}

	out := make(map[string]*Diagnostic, len(rawDiagnostics))
	codes := make(map[uint32]string, len(rawDiagnostics))
	for key, raw := range rawDiagnostics {
		if key[0] == '_' {
			continue
		}
		if raw.Code == 0 {
			return nil, fmt.Errorf("%s: %q has no code", name, key)
		}
		if prev, conflict := codes[raw.Code]; conflict {
			return nil, fmt.Errorf("%s: %q and %q share code %d", name, prev, key, raw.Code)
		}
		codes[raw.Code] = key

		var pattern *regexp.Regexp
		if raw.Pattern != "" {
			pattern, err = regexp.Compile(raw.Pattern)
			if err != nil {
				return nil, err
			}
		}
		out[key] = &Diagnostic{
			Key:     key,
			Code:    raw.Code,
			Message: raw.Message,
			Pattern: pattern,
		}
	}
	return out, nil
}

func ExpectDiagnostic(t *testing.T, want *Diagnostic, got Coded) {
	t.Helper()
	ExpectEq(t, want.Code, got.Code())
	if want.Pattern != nil {
		ExpectMatch(t, want.Pattern, got.Message())
	} else if want.Message != "" {
		ExpectEq(t, want.Message, got.Message())
	}
}

// PositionOrDie parses a "line:column" string.
func PositionOrDie(t *testing.T, s string) syntax.Position {
	t.Helper()
	var pos syntax.Position
	if _, err := fmt.Sscanf(s, "%d:%d", &pos.Line, &pos.Column); err != nil {
		t.Fatalf("invalid position %q: %v", s, err)
	}
	return pos
}
