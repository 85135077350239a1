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

	"go.nobloat.org/bare/codegen"
)

type cmdCodegen struct {
	*app
	outPath string
}

func (*cmdCodegen) help() *commandHelp {
	return &commandHelp{
		usage:   "codegen [options] SCHEMA",
		summary: "Generate Go code from a schema",
	}
}

func (cmd *cmdCodegen) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outPath, "output", "o", "", "Output file (default stdout)")
	flags.String("package", "", "Package name of the generated file (default \""+codegen.DefaultPackageName+"\")")
	flags.String("runtime-import", "", "Import path of the bare runtime package")
	flags.Bool("string-methods", true, "Generate String methods")
}

func (cmd *cmdCodegen) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		cmd.log.Error("Expected exactly one schema file", zap.Int("args", len(argv)))
		return 1
	}
	srcPath := argv[0]

	schema, _ := cmd.compileFile(srcPath)
	if schema == nil {
		return 1
	}

	// Nothing is written unless the whole file rendered.
	out, err := codegen.Generate(schema, cmd.config.Codegen.options()...)
	if err != nil {
		cmd.logError(srcPath, err)
		return 1
	}
	if !cmd.writeOutput(cmd.outPath, out) {
		return 1
	}
	if cmd.outPath != "" {
		cmd.log.Info("Generated Go code",
			zap.String("source", srcPath),
			zap.String("output", cmd.outPath),
			zap.String("package", cmd.config.Codegen.Package),
		)
	}
	return 0
}
