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

package codegen_test

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"go.nobloat.org/bare/codegen"
	"go.nobloat.org/bare/compiler"
	"go.nobloat.org/bare/internal/testutil"
	"go.nobloat.org/bare/syntax"
)

var (
	testdata      fs.FS
	codegenErrors map[string]*testutil.Diagnostic
)

func init() {
	var err error
	testdata, err = testutil.TestdataFS()
	if err != nil {
		panic(err)
	}
	codegenErrors, err = testutil.LoadDiagnostics(testdata, "codegen_errors")
	if err != nil {
		panic(err)
	}
}

func compileTestInput(t *testing.T, testName string) *compiler.Schema {
	t.Helper()
	srcPath := fmt.Sprintf("codegen/%s/%s.bare", testName, testName)
	src, err := fs.ReadFile(testdata, srcPath)
	testutil.AssertNoError(t, err)

	parsed, err := syntax.Parse(src)
	testutil.AssertNoError(t, err)
	result := compiler.Compile(parsed, compiler.WithSourceName(srcPath))
	schema, err := result.Schema()
	testutil.AssertNoError(t, err)
	return schema
}

func expectGoSource(t *testing.T, src []byte) {
	t.Helper()
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
}

func loadPatterns(t *testing.T, path string) []*regexp.Regexp {
	t.Helper()
	data, err := fs.ReadFile(testdata, path)
	testutil.AssertNoError(t, err)

	var patterns []*regexp.Regexp
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile("(?m)"+line))
	}
	testutil.AssertNoError(t, scanner.Err())
	return patterns
}

func specTest(t *testing.T, testName string) {
	t.Parallel()

	schema := compileTestInput(t, testName)
	out, genErr := codegen.Generate(schema)

	expectErr := fmt.Sprintf("codegen/%s/expect_err.json", testName)
	if _, err := fs.Stat(testdata, expectErr); err == nil {
		expectErrors, _ := testutil.LoadExpectedDiagnostics(t, codegenErrors, nil, testdata, expectErr)
		if len(expectErrors) != 1 {
			t.Fatalf("len(expectErrors) = %d, want 1", len(expectErrors))
		}
		testutil.ExpectTrue(t, out == nil)

		var err *codegen.Error
		if !errors.As(genErr, &err) {
			t.Fatalf("expected *codegen.Error, got %v", genErr)
		}
		testutil.ExpectDiagnostic(t, &expectErrors[0].Diagnostic, err)
		testutil.ExpectEq(t, expectErrors[0].Position, err.Position())
		return
	}

	testutil.AssertNoError(t, genErr)
	expectGoSource(t, out)
	for _, pattern := range loadPatterns(t, fmt.Sprintf("codegen/%s/expect_match.txt", testName)) {
		testutil.ExpectMatch(t, pattern, string(out))
	}
}

func TestCodegen(t *testing.T) {
	t.Parallel()

	testNames, err := testutil.TestCases(testdata, "codegen")
	testutil.AssertNoError(t, err)

	for _, testName := range testNames {
		t.Run(testName, func(t *testing.T) {
			specTest(t, testName)
		})
	}
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	schema := testutil.MustCompile(t, "type Id u64")
	out, err := codegen.Generate(schema, codegen.WithPackageName("wire"))
	testutil.AssertNoError(t, err)
	expectGoSource(t, out)
	testutil.ExpectMatch(t, `(?m)^package wire$`, string(out))
	testutil.ExpectMatch(t, `(?m)^// Code generated by bare codegen\. DO NOT EDIT\.$`, string(out))
}

func TestInvalidPackageName(t *testing.T) {
	t.Parallel()

	schema := testutil.MustCompile(t, "type Id u64")
	for _, name := range []string{"", "9lives", "two words", "my-pkg"} {
		out, err := codegen.Generate(schema, codegen.WithPackageName(name))
		testutil.ExpectTrue(t, out == nil)

		var genErr *codegen.Error
		if !errors.As(err, &genErr) {
			t.Fatalf("package %q: expected *codegen.Error, got %v", name, err)
		}
		testutil.ExpectDiagnostic(t, codegenErrors["invalid_package_name"], genErr)
	}
}

func TestRuntimeImport(t *testing.T) {
	t.Parallel()

	schema := testutil.MustCompile(t, "type Id u64")
	out, err := codegen.Generate(schema, codegen.WithRuntimeImport("example.com/fork/bare"))
	testutil.AssertNoError(t, err)
	expectGoSource(t, out)
	testutil.ExpectTrue(t, strings.Contains(string(out), `"example.com/fork/bare"`))
	testutil.ExpectFalse(t, strings.Contains(string(out), `"go.nobloat.org/bare"`))
}

func TestHelpersOnlyWhenUsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		hexByte  bool
		hexBytes bool
		optional bool
	}{
		{"type A { name: string }", false, false, false},
		{"type A { flags: u8 }", true, false, false},
		{"type A { key: data<16> }", true, true, false},
		{"type A { nick: optional<string> }", false, false, true},
		{"type A data", true, true, false},
	}
	for _, test := range tests {
		out, err := codegen.Generate(testutil.MustCompile(t, test.src))
		testutil.AssertNoError(t, err)
		expectGoSource(t, out)

		src := string(out)
		testutil.ExpectEq(t, test.hexByte, strings.Contains(src, "func bareHexByte("))
		testutil.ExpectEq(t, test.hexBytes, strings.Contains(src, "func bareHexBytes("))
		testutil.ExpectEq(t, test.optional, strings.Contains(src, "func bareOptionalString["))
	}
}

func TestWithoutStringMethods(t *testing.T) {
	t.Parallel()

	schema := testutil.MustCompile(t, `
		enum Color { RED GREEN }
		type Pixel { color: Color key: data<4> }
		type Shape (Pixel | void)
	`)
	out, err := codegen.Generate(schema, codegen.WithStringMethods(false))
	testutil.AssertNoError(t, err)
	expectGoSource(t, out)

	src := string(out)
	testutil.ExpectFalse(t, strings.Contains(src, "String() string"))
	testutil.ExpectFalse(t, strings.Contains(src, "bareHexBytes"))
	testutil.ExpectFalse(t, strings.Contains(src, `"fmt"`))
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	schema := testutil.MustCompile(t, "type Nickname optional<string>")
	_, err := codegen.Generate(schema)
	testutil.ExpectMatch(t, `^E6001: \(1:1\) - Type 'Nickname' is an optional type`, err.Error())
}

func TestEnumWidthSelectsGoType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width  string
		goType string
		method string
	}{
		{"", "uint64", "Uint"},
		{"u8", "uint8", "U8"},
		{"u16", "uint16", "U16"},
		{"u32", "uint32", "U32"},
		{"u64", "uint64", "U64"},
	}
	for _, test := range tests {
		schema := testutil.MustCompile(t, fmt.Sprintf("enum Wide %s { A B = 200 }", test.width))
		out, err := codegen.Generate(schema)
		testutil.AssertNoError(t, err)
		expectGoSource(t, out)

		src := string(out)
		testutil.ExpectTrue(t, strings.Contains(src, "type Wide "+test.goType+"\n"))
		testutil.ExpectTrue(t, strings.Contains(src, "v, err := d.Uint()"))
		testutil.ExpectTrue(t, strings.Contains(src, "return e.Uint(uint64(v))"))
		if test.method != "Uint" {
			testutil.ExpectFalse(t, strings.Contains(src, "d."+test.method+"()"))
			testutil.ExpectFalse(t, strings.Contains(src, "e."+test.method+"("))
		}
	}
}
