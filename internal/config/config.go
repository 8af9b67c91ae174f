// Package config carries generation options: functional options layered over
// defaults, with an optional .screengen.yaml overlay next to the processed
// directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSuffix is appended to a screen's simple name to form the generated
// type name.
const DefaultSuffix = "ActivityScreen"

// DefaultFramework is the import path of the runtime package the generated
// code references.
const DefaultFramework = "github.com/screengen/screengen/app"

// FileName is the per-directory configuration overlay.
const FileName = ".screengen.yaml"

// Options for one generation run.
type Options struct {
	Dir       string // directory to process; default is the working directory
	Recursive bool
	Suffix    string
	Framework string
}

// Option mutates Options.
type Option func(*Options)

// Build applies opts over the defaults.
func Build(opts ...Option) *Options {
	o := &Options{
		Dir:       ".",
		Suffix:    DefaultSuffix,
		Framework: DefaultFramework,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Dir sets the directory to process.
func Dir(dir string) Option {
	return func(o *Options) {
		o.Dir = filepath.Clean(dir)
	}
}

// Recursive toggles processing of subdirectories.
func Recursive(recursive bool) Option {
	return func(o *Options) {
		o.Recursive = recursive
	}
}

// Suffix overrides the generated type suffix.
func Suffix(suffix string) Option {
	return func(o *Options) {
		if suffix != "" {
			o.Suffix = suffix
		}
	}
}

// Framework overrides the runtime import path.
func Framework(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.Framework = path
		}
	}
}

type fileConfig struct {
	Suffix    string `yaml:"suffix"`
	Framework string `yaml:"framework"`
	Recursive *bool  `yaml:"recursive"`
}

// LoadFile reads the .screengen.yaml overlay in dir and returns the options
// it encodes. A missing file is not an error.
func LoadFile(dir string) ([]Option, error) {
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	var opts []Option
	if fc.Suffix != "" {
		opts = append(opts, Suffix(fc.Suffix))
	}
	if fc.Framework != "" {
		opts = append(opts, Framework(fc.Framework))
	}
	if fc.Recursive != nil {
		opts = append(opts, Recursive(*fc.Recursive))
	}
	return opts, nil
}
