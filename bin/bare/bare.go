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
	stdflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

// app is the state shared by every command. It is populated from the
// config file, environment, and flags before a command runs.
type app struct {
	configPath string
	config     *config
	log        *zap.Logger
	closeLog   func() error
	stdout     io.Writer
}

func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := loadConfig(a.configPath, flags)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.config = cfg
	a.log = log
	a.closeLog = closeLog
	return nil
}

func main() {
	ctx := context.Background()
	a := &app{stdout: os.Stdout}

	bareCmd := &cobra.Command{
		Use:   "bare [options] COMMAND",
		Short: "Check, format, and generate Go code from BARE schemas",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	bareCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, bareCmd.UsageString())
		os.Exit(1)
		return nil
	}
	persistent := bareCmd.PersistentFlags()
	persistent.StringVar(&a.configPath, "config", "", "Path to a bare.yaml config file")
	persistent.String("log-level", "", "Log level (debug, info, warn, error)")
	persistent.String("log-format", "", "Log format (console or json)")

	commands := []command{
		&cmdCheck{app: a},
		&cmdCodegen{app: a},
		&cmdFormat{app: a},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(cobraCmd *cobra.Command, args []string) error {
				if err := a.setup(cobraCmd.Flags()); err != nil {
					return err
				}
				rc := cmd.run(ctx, args)
				_ = a.closeLog()
				os.Exit(rc)
				return nil
			},
		}
		bareCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}

	bareCmd.Flags().AddGoFlagSet(stdflag.CommandLine)
	bareCmd.ParseFlags(nil)
	if _, err := bareCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}
