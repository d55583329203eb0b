// Package config loads fluentify settings from YAML.
//
// Example:
//
//	receivers:
//	  Verify: classic
//	packages:
//	  github.com/acme/strassert: string
//	target:
//	  that: Expect.That
//	disable:
//	  - classic.AreSame
//	tests-only: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/recipes"
	"github.com/sirkon/fluentify/internal/rewrite"
)

// Config of a rewrite run.
type Config struct {
	// Receivers adds receiver names of assertion families to the predefined ones.
	Receivers map[string]recipes.Dialect `yaml:"receivers"`

	// ReplaceReceivers drops the predefined receivers.
	ReplaceReceivers bool `yaml:"replace-receivers"`

	// Packages maps import paths whose package level functions are assertions.
	Packages map[string]recipes.Dialect `yaml:"packages"`

	// Target overrides names of the constraint API, empty fields keep their defaults.
	Target constraint.Vocabulary `yaml:"target"`

	// Disable lists recipes that must not be applied.
	Disable []recipes.Key `yaml:"disable"`

	// TestsOnly limits rewriting to _test.go files.
	TestsOnly bool `yaml:"tests-only"`
}

// Load reads the config file. An empty path gives the default config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if _, err := cfg.Vocabulary(); err != nil {
		return nil, err
	}
	if _, err := cfg.Table(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Vocabulary returns the target vocabulary with defaults filled in.
func (c *Config) Vocabulary() (constraint.Vocabulary, error) {
	v := constraint.DefaultVocabulary()
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&v.That, c.Target.That},
		{&v.Is, c.Target.Is},
		{&v.Has, c.Target.Has},
		{&v.Does, c.Target.Does},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}

	if err := v.Validate(); err != nil {
		return constraint.Vocabulary{}, fmt.Errorf("target vocabulary: %w", err)
	}

	return v, nil
}

// ReceiverSet returns receiver names merged with the predefined ones.
func (c *Config) ReceiverSet() map[string]recipes.Dialect {
	res := map[string]recipes.Dialect{}
	if !c.ReplaceReceivers {
		res = recipes.Receivers()
	}
	maps.Copy(res, c.Receivers)

	return res
}

// Table returns the default recipe table without the disabled recipes.
func (c *Config) Table() (*recipes.Table, error) {
	table := recipes.Default()
	for _, k := range c.Disable {
		if _, ok := table.Lookup(k.Dialect, k.Method); !ok {
			return nil, fmt.Errorf("disable unknown recipe %s", k)
		}
	}

	if len(c.Disable) == 0 {
		return table, nil
	}
	return table.Without(c.Disable...), nil
}

// Rewriter builds a rewriter following the config.
func (c *Config) Rewriter() (*rewrite.Rewriter, error) {
	vocab, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}
	table, err := c.Table()
	if err != nil {
		return nil, err
	}

	return rewrite.New(
		rewrite.WithTable(table),
		rewrite.WithReceivers(c.ReceiverSet()),
		rewrite.WithPackages(c.Packages),
		rewrite.WithVocabulary(vocab),
	), nil
}

// Includes reports whether the file must be processed.
func (c *Config) Includes(filename string) bool {
	return !c.TestsOnly || strings.HasSuffix(filename, "_test.go")
}
