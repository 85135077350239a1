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
	"encoding/json"
	"io/fs"
	"testing"

	"go.nobloat.org/bare/compiler"
	"go.nobloat.org/bare/syntax"
)

func MustParse(t *testing.T, src string) *syntax.Schema {
	t.Helper()
	schema, err := syntax.Parse([]byte(src))
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	return schema
}

// MustCompile parses and compiles src, failing the test on any error.
// Warnings are logged but do not fail the test.
func MustCompile(t *testing.T, src string) *compiler.Schema {
	t.Helper()
	result := compiler.Compile(MustParse(t, src))
	for _, warning := range result.Warnings {
		t.Logf("%v", warning)
	}
	schema, err := result.Schema()
	if err != nil {
		for _, err := range result.Errors {
			t.Errorf("%v", err)
		}
		t.FailNow()
	}
	return schema
}

type ExpectedDiagnostic struct {
	Diagnostic
	Position syntax.Position
}

type expectedDiagnostics struct {
	Errors []struct {
		Error    string `json:"error"`
		Position string `json:"error_position"`
	} `json:"errors"`
	Warnings []struct {
		Warning  string `json:"warning"`
		Position string `json:"warning_position"`
	} `json:"warnings"`
}

// LoadExpectedDiagnostics reads the errors and warnings a compiler test case
// expects, in the order they are reported.
func LoadExpectedDiagnostics(
	t *testing.T,
	schemaErrors map[string]*Diagnostic,
	schemaWarnings map[string]*Diagnostic,
	testdata fs.FS,
	jsonPath string,
) (errs, warnings []*ExpectedDiagnostic) {
	t.Helper()

	jsonData, err := fs.ReadFile(testdata, jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var raw expectedDiagnostics
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		t.Fatal(err)
	}

	for _, raw := range raw.Errors {
		diag, ok := schemaErrors[raw.Error]
		if !ok {
			t.Fatalf("unknown schema error name %q", raw.Error)
		}
		errs = append(errs, &ExpectedDiagnostic{
			Diagnostic: *diag,
			Position:   PositionOrDie(t, raw.Position),
		})
	}
	for _, raw := range raw.Warnings {
		diag, ok := schemaWarnings[raw.Warning]
		if !ok {
			t.Fatalf("unknown schema warning name %q", raw.Warning)
		}
		warnings = append(warnings, &ExpectedDiagnostic{
			Diagnostic: *diag,
			Position:   PositionOrDie(t, raw.Position),
		})
	}
	return errs, warnings
}
