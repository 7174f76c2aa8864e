// Package config loads xanalytics settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"gopkg.in/yaml.v3"
)

// Config holds all xanalytics configuration.
type Config struct {
	// Latency is the simulated fetch delay before a profile is shown.
	Latency Duration `yaml:"latency"`

	// RevealDelay separates "data ready" from "results visible".
	RevealDelay Duration `yaml:"reveal_delay"`

	// FrameInterval is the animation tick period of the dashboard.
	FrameInterval Duration `yaml:"frame_interval"`

	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig selects how profiles are drawn.
type GeneratorConfig struct {
	Mode string `yaml:"mode"` // fixed, sequence
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging in the dashboard
}

// Duration is a time.Duration that unmarshals from strings like "1500ms".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes d as a duration string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Latency:       Duration(1500 * time.Millisecond),
		RevealDelay:   Duration(100 * time.Millisecond),
		FrameInterval: Duration(16 * time.Millisecond),
		Generator:     GeneratorConfig{Mode: string(profile.ModeFixed)},
		Logging:       LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.xanalytics/config.yaml.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".xanalytics", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies XANALYTICS_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("XANALYTICS_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("XANALYTICS_LATENCY: %w", err)
		}
		c.Latency = Duration(d)
	}
	if v := os.Getenv("XANALYTICS_GENERATOR"); v != "" {
		c.Generator.Mode = v
	}
	if v := os.Getenv("XANALYTICS_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("XANALYTICS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate rejects settings the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.Latency <= 0 {
		return fmt.Errorf("latency must be positive, got %s", c.Latency.Std())
	}
	if c.RevealDelay <= 0 {
		return fmt.Errorf("reveal_delay must be positive, got %s", c.RevealDelay.Std())
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval.Std())
	}
	if _, err := profile.ParseMode(c.Generator.Mode); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

// GeneratorMode returns the validated generator mode.
func (c *Config) GeneratorMode() profile.Mode {
	mode, err := profile.ParseMode(c.Generator.Mode)
	if err != nil {
		return profile.ModeFixed
	}
	return mode
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
