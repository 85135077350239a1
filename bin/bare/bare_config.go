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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.nobloat.org/bare/codegen"
)

type config struct {
	Log     logConfig     `mapstructure:"log"`
	Codegen codegenConfig `mapstructure:"codegen"`
}

type logConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is console or json.
	Format string `mapstructure:"format"`
	// Outputs lists stdout, stderr, or file paths.
	Outputs  []string       `mapstructure:"outputs"`
	Rotation rotationConfig `mapstructure:"rotation"`
}

// rotationConfig applies to file outputs.
type rotationConfig struct {
	Enable     bool `mapstructure:"enable"`
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

type codegenConfig struct {
	Package       string `mapstructure:"package"`
	RuntimeImport string `mapstructure:"runtime_import"`
	StringMethods bool   `mapstructure:"string_methods"`
}

func defaultConfig() *config {
	return &config{
		Log: logConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: rotationConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Codegen: codegenConfig{
			Package:       codegen.DefaultPackageName,
			RuntimeImport: codegen.DefaultRuntimeImport,
			StringMethods: true,
		},
	}
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"log.level":              "log-level",
	"log.format":             "log-format",
	"codegen.package":        "package",
	"codegen.runtime_import": "runtime-import",
	"codegen.string_methods": "string-methods",
}

// loadConfig merges, from lowest to highest precedence, built-in defaults,
// the config file, BARE_* environment variables, and changed flags.
//
// Without an explicit path, "bare.yaml" is looked up in the working
// directory and the user config directory. A missing file is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
	v.SetDefault("codegen.package", cfg.Codegen.Package)
	v.SetDefault("codegen.runtime_import", cfg.Codegen.RuntimeImport)
	v.SetDefault("codegen.string_methods", cfg.Codegen.StringMethods)

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	if path == "" {
		path = os.Getenv("BARE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bare")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "bare"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "":
		c.Log.Format = "console"
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format: %q", c.Log.Format)
	}
	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}
	if c.Codegen.Package == "" {
		c.Codegen.Package = codegen.DefaultPackageName
	}
	if c.Codegen.RuntimeImport == "" {
		c.Codegen.RuntimeImport = codegen.DefaultRuntimeImport
	}
	return nil
}

func (c *codegenConfig) options() []codegen.GenerateOption {
	return []codegen.GenerateOption{
		codegen.WithPackageName(c.Package),
		codegen.WithRuntimeImport(c.RuntimeImport),
		codegen.WithStringMethods(c.StringMethods),
	}
}
