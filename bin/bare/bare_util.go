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

package main

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"go.nobloat.org/bare/compiler"
	"go.nobloat.org/bare/syntax"
)

type diagnostic interface {
	Code() uint32
	Message() string
	Position() syntax.Position
}

func diagnosticFields(srcPath string, diag diagnostic) []zap.Field {
	return []zap.Field{
		zap.String("source", srcPath),
		zap.Stringer("pos", diag.Position()),
		zap.Uint32("code", diag.Code()),
	}
}

// logError logs err, with its code and position when it carries them.
func (a *app) logError(srcPath string, err error) {
	var diag diagnostic
	if errors.As(err, &diag) {
		a.log.Error(diag.Message(), diagnosticFields(srcPath, diag)...)
		return
	}
	a.log.Error(err.Error(), zap.String("source", srcPath))
}

func (a *app) parseFile(srcPath string) ([]byte, *syntax.Schema, bool) {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		a.logError(srcPath, err)
		return nil, nil, false
	}
	parsed, err := syntax.Parse(src)
	if err != nil {
		a.logError(srcPath, err)
		return src, nil, false
	}
	return src, parsed, true
}

// compileFile parses and compiles the schema at srcPath, logging every
// diagnostic. The schema is nil if there were any errors.
func (a *app) compileFile(srcPath string) (*compiler.Schema, int) {
	_, parsed, ok := a.parseFile(srcPath)
	if !ok {
		return nil, 0
	}
	result := compiler.Compile(parsed, compiler.WithSourceName(filepath.Base(srcPath)))
	for _, warn := range result.Warnings {
		a.log.Warn(warn.Message(), diagnosticFields(srcPath, warn)...)
	}
	for _, err := range result.Errors {
		a.log.Error(err.Message(), diagnosticFields(srcPath, err)...)
	}
	schema, err := result.Schema()
	if err != nil {
		return nil, len(result.Warnings)
	}
	return schema, len(result.Warnings)
}

// writeOutput writes data to outPath, or to stdout when outPath is empty.
func (a *app) writeOutput(outPath string, data []byte) bool {
	if outPath == "" {
		if _, err := a.stdout.Write(data); err != nil {
			a.log.Error("write output", zap.Error(err))
			return false
		}
		return true
	}
	if err := writeFile(outPath, data); err != nil {
		a.log.Error("write output", zap.String("path", outPath), zap.Error(err))
		return false
	}
	return true
}

func writeFile(path string, data []byte) error {
	openFlags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	fp, err := os.OpenFile(path, openFlags, 0o666)
	if err != nil {
		return err
	}
	_, writeErr := fp.Write(data)
	closeErr := fp.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
