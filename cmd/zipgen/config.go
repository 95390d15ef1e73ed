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

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects what zipgen generates. It can be read from a YAML file:
//
//	package: stream
//	output: zip.gen.go
//	min: 2
//	max: 13
type Config struct {
	Package  string `yaml:"package"`
	Output   string `yaml:"output"`
	MinArity int    `yaml:"min"`
	MaxArity int    `yaml:"max"`
}

// DefaultConfig returns the configuration used by go:generate in
// hwy/contrib/stream.
func DefaultConfig() Config {
	return Config{
		Package:  "stream",
		Output:   "zip.gen.go",
		MinArity: 2,
		MaxArity: len(memberNames),
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the config describes a generatable file.
func (c Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("package name is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output file is required"))
	}
	if c.MinArity < 2 {
		errs = append(errs, fmt.Errorf("min arity %d is below 2", c.MinArity))
	}
	if c.MaxArity > len(memberNames) {
		errs = append(errs, fmt.Errorf("max arity %d is above %d", c.MaxArity, len(memberNames)))
	}
	if c.MinArity > c.MaxArity {
		errs = append(errs, fmt.Errorf("min arity %d is above max arity %d", c.MinArity, c.MaxArity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
