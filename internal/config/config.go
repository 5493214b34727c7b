// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the juggle-fest YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Matcher MatcherConfig `yaml:"matcher"`
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type MatcherConfig struct {
	MaxRounds int `yaml:"max_rounds"` // 0 derives the ceiling from the input size
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

type OutputConfig struct {
	Format string `yaml:"format"` // text, json
	Order  string `yaml:"order"`  // desc, asc
}

type MetricsConfig struct {
	File      string `yaml:"file"` // prometheus textfile, empty disables
	Namespace string `yaml:"namespace"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Order:  "desc",
		},
		Metrics: MetricsConfig{
			Namespace: "jugglefest",
		},
	}
}

// Load reads file over the defaults. An empty file name returns the
// defaults.
func Load(file string) (Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// Decode overlays the YAML document on cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Matcher.MaxRounds < 0 {
		return fmt.Errorf("%w: matcher.max_rounds must not be negative", ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Output.Order {
	case "desc", "asc":
	default:
		return fmt.Errorf("%w: output.order %q", ErrInvalidConfig, c.Output.Order)
	}
	if c.Metrics.File != "" && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics.namespace is required with metrics.file", ErrInvalidConfig)
	}
	return nil
}
