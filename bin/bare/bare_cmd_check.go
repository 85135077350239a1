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
	"context"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type cmdCheck struct {
	*app
	werror bool
}

func (*cmdCheck) help() *commandHelp {
	return &commandHelp{
		usage:   "check [--werror] SCHEMA...",
		summary: "Report syntax and schema errors",
	}
}

func (cmd *cmdCheck) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.werror, "werror", false, "Treat warnings as errors")
}

func (cmd *cmdCheck) run(ctx context.Context, argv []string) int {
	if len(argv) == 0 {
		cmd.log.Error("No schema files given")
		return 1
	}

	rc := 0
	for _, srcPath := range argv {
		schema, warnings := cmd.compileFile(srcPath)
		if schema == nil {
			rc = 1
			continue
		}
		if cmd.werror && warnings > 0 {
			cmd.log.Error("Warnings are treated as errors",
				zap.String("source", srcPath),
				zap.Int("warnings", warnings),
			)
			rc = 1
			continue
		}
		cmd.log.Debug("Schema OK",
			zap.String("source", srcPath),
			zap.Int("decls", len(schema.Decls())),
		)
	}
	return rc
}
