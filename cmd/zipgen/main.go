// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command zipgen generates the fixed-arity lockstep zip engines of
// hwy/contrib/stream from a single template.
//
// Usage:
//
//	zipgen --min 2 --max 13 --package stream --output zip.gen.go
//	zipgen --config zipgen.yaml --verbose
//	zipgen --stdout
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/zipgen --output zip.gen.go
//
// For every arity N it emits a TupleN type with its TN, SplatN and Unpack
// helpers, and a ZipN engine whose first member leads and whose other
// members are read at the leader's position.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	stdout     bool
	cfg        Config
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{cfg: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "zipgen",
		Short: "Generate fixed-arity lockstep zip engines",
		Long: `Generate fixed-arity lockstep zip engines.

The engine is written once as a template over a leader (member 0) and its
followers (members 1..N-1) and rendered for every arity in [min, max].
Flags override values read from --config.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.StringVar(&opts.cfg.Package, "package", opts.cfg.Package, "output package name")
	f.StringVar(&opts.cfg.Output, "output", opts.cfg.Output, "output file")
	f.IntVar(&opts.cfg.MinArity, "min", opts.cfg.MinArity, "smallest arity to generate")
	f.IntVar(&opts.cfg.MaxArity, "max", opts.cfg.MaxArity, "largest arity to generate")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every rendered arity")
	f.BoolVar(&opts.stdout, "stdout", false, "write the generated code to stdout instead of --output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg := opts.cfg
	if opts.configPath != "" {
		loaded, err := LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("package") {
			cfg.Package = loaded.Package
		}
		if !flags.Changed("output") {
			cfg.Output = loaded.Output
		}
		if !flags.Changed("min") {
			cfg.MinArity = loaded.MinArity
		}
		if !flags.Changed("max") {
			cfg.MaxArity = loaded.MaxArity
		}
	}

	gen := &Generator{
		Config: cfg,
		Logger: newLogger(cmd.ErrOrStderr(), opts.verbose),
	}

	if opts.stdout {
		src, err := gen.Render()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	return gen.Run()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
