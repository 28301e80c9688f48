// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultPolicy    = "standard"
	DefaultMetric    = "euclidean"
	DefaultThreshold = 0.1
	DefaultWorkers   = 1
)

// DefaultShape is the microstate shape used when none is configured.
var DefaultShape = []int{3, 1}

// Config mirrors the YAML file.
type Config struct {
	// Policy is one of standard | corridor | jrp.
	Policy string `yaml:"policy"`

	// Metric is one of euclidean | manhattan | supremum.
	Metric string `yaml:"metric"`

	// Threshold is a scalar or a two-element list; its shape must fit Policy.
	Threshold any `yaml:"threshold"`

	// Shape is the microstate window [rows, cols] used for entropy.
	Shape []int `yaml:"shape"`

	// Samples > 0 switches the distribution builder to random sampling.
	Samples int `yaml:"samples"`

	// Seed drives sampling; 0 selects a fixed default.
	Seed int64 `yaml:"seed"`

	// Workers splits the exhaustive scan across goroutines.
	Workers int `yaml:"workers"`
}

// Analysis is the typed result of Resolve.
type Analysis struct {
	Rule       recurrence.Rule
	Threshold  recurrence.Threshold
	Shape      microstate.Shape
	Microstate []microstate.Option
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML and fills defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %v: %w", err, ErrInvalid)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Policy == "" {
		cfg.Policy = DefaultPolicy
	}
	if cfg.Metric == "" {
		cfg.Metric = DefaultMetric
	}
	if cfg.Threshold == nil {
		cfg.Threshold = DefaultThreshold
	}
	if len(cfg.Shape) == 0 {
		cfg.Shape = append([]int(nil), DefaultShape...)
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
}

// Resolve validates cfg and turns it into typed analysis values.
// Returned errors wrap the sentinel of the package that rejected the value
// (recurrence.ErrInvalidConfiguration, metric.ErrUnknownMetric,
// microstate.ErrBadShape, ErrInvalid).
func (cfg *Config) Resolve() (Analysis, error) {
	if cfg.Samples < 0 {
		return Analysis{}, fmt.Errorf("config: samples %d must be ≥ 0: %w", cfg.Samples, ErrInvalid)
	}
	if cfg.Workers < 0 {
		return Analysis{}, fmt.Errorf("config: workers %d must be ≥ 0: %w", cfg.Workers, ErrInvalid)
	}

	policy, err := recurrence.ParsePolicy(cfg.Policy)
	if err != nil {
		return Analysis{}, fmt.Errorf("config: policy: %w", err)
	}
	m, err := metric.ByName(cfg.Metric)
	if err != nil {
		return Analysis{}, fmt.Errorf("config: metric: %w", err)
	}
	t, err := recurrence.ParseThreshold(cfg.Threshold)
	if err != nil {
		return Analysis{}, fmt.Errorf("config: threshold: %w", err)
	}
	rule, err := recurrence.New(policy, m, t)
	if err != nil {
		return Analysis{}, fmt.Errorf("config: %w", err)
	}
	shape, err := microstate.ParseShape(cfg.Shape)
	if err != nil {
		return Analysis{}, fmt.Errorf("config: shape: %w", err)
	}

	var opts []microstate.Option
	if cfg.Samples > 0 {
		opts = append(opts, microstate.WithSamples(cfg.Samples), microstate.WithSeed(cfg.Seed))
	}
	if cfg.Workers > 1 {
		opts = append(opts, microstate.WithWorkers(cfg.Workers))
	}

	return Analysis{Rule: rule, Threshold: t, Shape: shape, Microstate: opts}, nil
}
