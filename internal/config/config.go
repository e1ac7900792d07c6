// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults. The benchmark's
// positional arguments stay on argv; everything tunable-but-ambient
// (scheduler backend, seed, logging, export endpoints) lives here.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/tickline/tickline/internal/domain"
)

// envPrefix namespaces every variable this tool reads, so a benchmark run
// inside a CI job cannot pick up unrelated LOG_LEVEL-style settings.
const envPrefix = "SCHEDBENCH_"

// Scheduler backend names accepted by the `scheduler` key.
const (
	SchedulerMultimap = "multimap"
	SchedulerHeap     = "heap"
)

// Config holds all tool configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Benchmark knobs
	Scheduler  string `koanf:"scheduler"`   // "multimap" or "heap"
	Seed       uint64 `koanf:"seed"`        // 0 = entropy-derived
	CheckStep  uint64 `koanf:"check_step"`  // clock increment between Check calls
	SpanFactor uint64 `koanf:"span_factor"` // horizon = span_factor * numsamples

	// OpenTelemetry configuration
	OTEL OTELConfig `koanf:"otel"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint    string `koanf:"endpoint"` // Empty disables OTLP export
	ServiceName string `koanf:"service_name"`
}

// defaults returns a Config with compiled default values. The benchmark
// defaults reproduce the historical tool: multimap backend, step 5, horizon
// 10x the sample count.
func defaults() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		LogFormat:   "json",

		Scheduler:  SchedulerMultimap,
		Seed:       0,
		CheckStep:  uint64(domain.DefaultCheckStep),
		SpanFactor: domain.DefaultSpanFactor,

		OTEL: OTELConfig{
			ServiceName: "schedbench",
		},
	}
}

// Load loads configuration following the precedence:
// 1. SCHEDBENCH_* environment variables (highest)
// 2. Compiled defaults (lowest)
//
// Nested keys use a double underscore: SCHEDBENCH_OTEL__ENDPOINT maps to
// otel.endpoint, while SCHEDBENCH_LOG_LEVEL stays the flat key log_level.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	// Start with compiled defaults
	cfg := defaults()

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// Unmarshal into config struct
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Validate
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field and required constraints.
func validate(cfg *Config) error {
	switch cfg.Scheduler {
	case SchedulerMultimap, SchedulerHeap:
	default:
		return fmt.Errorf("%w: %q", domain.ErrBadScheduler, cfg.Scheduler)
	}

	if cfg.CheckStep == 0 {
		return fmt.Errorf("%w: check_step must be positive", domain.ErrConfigRequired)
	}
	if cfg.SpanFactor == 0 {
		return fmt.Errorf("%w: span_factor must be positive", domain.ErrConfigRequired)
	}

	// In production, results must be exported somewhere.
	if cfg.IsProd() && cfg.OTEL.Endpoint == "" {
		return fmt.Errorf("%w: otel.endpoint", domain.ErrConfigRequired)
	}

	return nil
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
