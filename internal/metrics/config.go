package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env maps environment variable names for metrics configuration.
type Env struct {
	Enabled string
	Path    string
}

// Config controls whether the metrics endpoint is exposed and where.
type Config struct {
	Enabled *bool  `toml:"enabled"`
	Path    string `toml:"path"`
}

// IsEnabled reports the effective enabled flag. Metrics are on unless disabled explicitly.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Enabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = &enabled
		}
	}
	if v := os.Getenv(env.Path); v != "" {
		c.Path = v
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %s", c.Path)
	}
	return nil
}
