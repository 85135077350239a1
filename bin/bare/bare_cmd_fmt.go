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
	"bytes"
	"context"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go.nobloat.org/bare/syntax"
)

type cmdFormat struct {
	*app
	write bool
}

func (*cmdFormat) help() *commandHelp {
	return &commandHelp{
		usage:   "fmt [-w] SCHEMA...",
		summary: "Print schemas in canonical form",
	}
}

func (cmd *cmdFormat) flags(flags *pflag.FlagSet) {
	flags.BoolVarP(&cmd.write, "write", "w", false, "Rewrite files in place instead of printing them")
}

func (cmd *cmdFormat) run(ctx context.Context, argv []string) int {
	if len(argv) == 0 {
		cmd.log.Error("No schema files given")
		return 1
	}

	rc := 0
	for _, srcPath := range argv {
		src, parsed, ok := cmd.parseFile(srcPath)
		if !ok {
			rc = 1
			continue
		}
		out := []byte(syntax.Format(parsed))
		if !cmd.write {
			if !cmd.writeOutput("", out) {
				rc = 1
			}
			continue
		}
		if bytes.Equal(src, out) {
			continue
		}
		// Comments are not part of the parsed schema.
		if bytes.IndexByte(src, '#') >= 0 {
			cmd.log.Warn("Comments are removed by formatting", zap.String("source", srcPath))
		}
		if !cmd.writeOutput(srcPath, out) {
			rc = 1
		}
	}
	return rc
}
