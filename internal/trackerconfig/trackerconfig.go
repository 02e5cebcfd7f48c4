// Package trackerconfig holds the runtime-tunable, non-algorithmic knobs for
// a tracker deployment: which variant to run, which of the two built-in
// hypothesis generators (7 or 11) to use, demo/stream parameters, and
// logging verbosity. The algorithm's compile-time contract constants
// (patch size, window size, the two hypothesis counts themselves, hysteresis
// factor, template update factor) are never exposed here — changing any of those changes the
// algorithm, not a deployment preference, and they stay put as constants in
// package tracker.
package trackerconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for a tracker deployment. The schema
// mirrors a JSON file of the same shape; fields omitted from the file retain
// their default values, so partial configs are safe.
type Config struct {
	// Variant selects the scoring/template strategy: one of "correlation",
	// "haste_correlation", "haste_difference", "haste_difference_star".
	Variant *string `json:"variant,omitempty"`

	// HypothesisNeighborhood selects the hypothesis generator: 7 or 11.
	HypothesisNeighborhood *int `json:"hypothesis_neighborhood,omitempty"`

	// DemoEventRateHz controls the synthetic event generation rate used by
	// cmd/hastedemo.
	DemoEventRateHz *float64 `json:"demo_event_rate_hz,omitempty"`

	// DemoDurationSeconds bounds how long cmd/hastedemo runs its synthetic
	// stream for.
	DemoDurationSeconds *float64 `json:"demo_duration_seconds,omitempty"`

	// LogVerbose enables per-event diagnostic logging (the default logs only
	// state changes).
	LogVerbose *bool `json:"log_verbose,omitempty"`
}

// Empty returns a Config with every field unset.
func Empty() *Config {
	return &Config{}
}

// Load reads a Config from a JSON file at path. The file must have a .json
// extension and be no larger than 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("trackerconfig: config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("trackerconfig: failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("trackerconfig: config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("trackerconfig: failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("trackerconfig: failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("trackerconfig: invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that set fields hold legal values.
func (c *Config) Validate() error {
	if c.Variant != nil {
		switch *c.Variant {
		case "correlation", "haste_correlation", "haste_difference", "haste_difference_star":
		default:
			return fmt.Errorf("variant must be one of correlation, haste_correlation, haste_difference, haste_difference_star, got %q", *c.Variant)
		}
	}
	if c.HypothesisNeighborhood != nil {
		if *c.HypothesisNeighborhood != 7 && *c.HypothesisNeighborhood != 11 {
			return fmt.Errorf("hypothesis_neighborhood must be 7 or 11, got %d", *c.HypothesisNeighborhood)
		}
	}
	if c.DemoEventRateHz != nil && *c.DemoEventRateHz <= 0 {
		return fmt.Errorf("demo_event_rate_hz must be positive, got %f", *c.DemoEventRateHz)
	}
	if c.DemoDurationSeconds != nil && *c.DemoDurationSeconds <= 0 {
		return fmt.Errorf("demo_duration_seconds must be positive, got %f", *c.DemoDurationSeconds)
	}
	return nil
}

// GetVariant returns the variant name or the default "haste_difference_star".
func (c *Config) GetVariant() string {
	if c.Variant == nil {
		return "haste_difference_star"
	}
	return *c.Variant
}

// GetHypothesisNeighborhood returns the hypothesis neighborhood size or the
// default of 11.
func (c *Config) GetHypothesisNeighborhood() int {
	if c.HypothesisNeighborhood == nil {
		return 11
	}
	return *c.HypothesisNeighborhood
}

// GetDemoEventRateHz returns the demo event rate or the default of 1000 Hz.
func (c *Config) GetDemoEventRateHz() float64 {
	if c.DemoEventRateHz == nil {
		return 1000.0
	}
	return *c.DemoEventRateHz
}

// GetDemoDurationSeconds returns the demo duration or the default of 2s.
func (c *Config) GetDemoDurationSeconds() float64 {
	if c.DemoDurationSeconds == nil {
		return 2.0
	}
	return *c.DemoDurationSeconds
}

// GetLogVerbose returns the log verbosity flag, defaulting to false.
func (c *Config) GetLogVerbose() bool {
	if c.LogVerbose == nil {
		return false
	}
	return *c.LogVerbose
}
