// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/JaimeStill/wikilabels-gadget/internal/assets"
	"github.com/JaimeStill/wikilabels-gadget/internal/gadget"
	"github.com/JaimeStill/wikilabels-gadget/internal/metrics"
	"github.com/JaimeStill/wikilabels-gadget/pkg/logging"
	"github.com/JaimeStill/wikilabels-gadget/pkg/middleware"
	"github.com/JaimeStill/wikilabels-gadget/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	// EnvServiceShutdownTimeout overrides the service shutdown timeout.
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"

	// HealthPath serves the liveness check.
	HealthPath = "/healthz"

	// ReadyPath serves the readiness check.
	ReadyPath = "/readyz"
)

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var storageEnv = &storage.Env{
	BasePath:    "STORAGE_BASE_PATH",
	MaxFileSize: "STORAGE_MAX_FILE_SIZE",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var assetsEnv = &assets.Env{
	Cache: "ASSETS_CACHE",
	Warm:  "ASSETS_WARM",
}

var gadgetEnv = &gadget.Env{
	BasePath: "GADGET_BASE_PATH",
}

var metricsEnv = &metrics.Env{
	Enabled: "METRICS_ENABLED",
	Path:    "METRICS_PATH",
}

// Config represents the root service configuration.
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Logging         logging.Config        `toml:"logging"`
	Storage         storage.Config        `toml:"storage"`
	CORS            middleware.CORSConfig `toml:"cors"`
	Assets          assets.Config         `toml:"assets"`
	Gadget          gadget.Config         `toml:"gadget"`
	Metrics         metrics.Config        `toml:"metrics"`
	ShutdownTimeout string                `toml:"shutdown_timeout"`
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Env returns the active overlay environment name, or "" when none is set.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

// Load reads the base configuration file and applies any environment-specific overlay.
// A missing base file yields an empty configuration so defaults and environment
// variables alone can drive the service.
func Load() (*Config, error) {
	cfg, err := load(BaseConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Assets.Finalize(assetsEnv); err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	if err := c.Gadget.Finalize(gadgetEnv); err != nil {
		return fmt.Errorf("gadget: %w", err)
	}
	if err := c.Metrics.Finalize(metricsEnv); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return c.validateRoutes()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Server.Merge(&overlay.Server)
	c.Logging.Merge(&overlay.Logging)
	c.Storage.Merge(&overlay.Storage)
	c.CORS.Merge(&overlay.CORS)
	c.Assets.Merge(&overlay.Assets)
	c.Gadget.Merge(&overlay.Gadget)
	c.Metrics.Merge(&overlay.Metrics)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

// validateRoutes rejects mount paths that would register the same pattern twice.
func (c *Config) validateRoutes() error {
	reserved := []string{HealthPath, ReadyPath}

	if c.Metrics.IsEnabled() {
		if slices.Contains(reserved, c.Metrics.Path) {
			return fmt.Errorf("metrics.path %s is reserved", c.Metrics.Path)
		}
		reserved = append(reserved, c.Metrics.Path)
	}

	for _, path := range reserved {
		if c.Gadget.Overlaps(path) {
			return fmt.Errorf("gadget.base_path %q conflicts with route %s", c.Gadget.BasePath, path)
		}
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		overlayPath := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(overlayPath); err == nil {
			return overlayPath
		}
	}
	return ""
}
