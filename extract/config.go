// SPDX-License-Identifier: MIT

package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statecover/observability"
)

// Config is the YAML form of Options.
//
//	solver: push-relabel
//	search_depth: 12
//	max_optimizer_depth: 4
//	partial_order_reduction: false
//	metrics: true
//	tracing: true
type Config struct {
	Solver                string `yaml:"solver"`
	SearchDepth           int    `yaml:"search_depth"`
	MaxOptimizerDepth     int    `yaml:"max_optimizer_depth"`
	PartialOrderReduction *bool  `yaml:"partial_order_reduction"`
	Metrics               bool   `yaml:"metrics"`
	Tracing               bool   `yaml:"tracing"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML document and validates it. Unknown keys are
// rejected. An empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parse yaml: %v", ErrConfig, err)
	}
	if _, err := ParseSolver(c.Solver); err != nil {
		return Config{}, err
	}
	if c.SearchDepth < 0 {
		return Config{}, fmt.Errorf("%w: search_depth cannot be negative (%d)", ErrConfig, c.SearchDepth)
	}
	if c.MaxOptimizerDepth < 0 {
		return Config{}, fmt.Errorf("%w: max_optimizer_depth cannot be negative (%d)", ErrConfig, c.MaxOptimizerDepth)
	}

	return c, nil
}

// Options converts c to functional options. Zero values keep the defaults.
func (c Config) Options() []Option {
	var opts []Option
	if s, err := ParseSolver(c.Solver); err == nil {
		opts = append(opts, WithSolver(s))
	}
	if c.SearchDepth > 0 {
		opts = append(opts, WithSearchDepth(c.SearchDepth))
	}
	if c.MaxOptimizerDepth > 0 {
		opts = append(opts, WithMaxOptimizerDepth(c.MaxOptimizerDepth))
	}
	if c.PartialOrderReduction != nil {
		opts = append(opts, WithPartialOrderReduction(*c.PartialOrderReduction))
	}
	if c.Metrics {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	}
	if c.Tracing {
		opts = append(opts, WithSpans(observability.NewSpanManager()))
	}

	return opts
}
