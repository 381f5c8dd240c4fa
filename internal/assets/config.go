package assets

import (
	"fmt"
	"os"
	"strconv"
)

// Env maps environment variable names for asset configuration.
type Env struct {
	Cache string
	Warm  string
}

// ManifestConfig overrides the built-in manifest for each category.
// Empty lists keep the default.
type ManifestConfig struct {
	Stylesheet  []string `toml:"stylesheet"`
	Application []string `toml:"application"`
	Loader      []string `toml:"loader"`
}

// Config controls aggregation caching and the manifests it reads.
type Config struct {
	// Cache memoizes each category after its first successful aggregation.
	// Nil means enabled. Set false to re-read files on every request.
	Cache *bool `toml:"cache"`

	// Warm aggregates every category at startup so the first request is a cache hit.
	// Nil means disabled.
	Warm *bool `toml:"warm"`

	Manifests ManifestConfig `toml:"manifests"`
}

// CacheEnabled reports the effective cache flag.
func (c *Config) CacheEnabled() bool {
	return c.Cache == nil || *c.Cache
}

// WarmEnabled reports the effective warm-up flag.
func (c *Config) WarmEnabled() bool {
	return c.Warm != nil && *c.Warm
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
	if overlay.Cache != nil {
		c.Cache = overlay.Cache
	}
	if overlay.Warm != nil {
		c.Warm = overlay.Warm
	}
	if overlay.Manifests.Stylesheet != nil {
		c.Manifests.Stylesheet = overlay.Manifests.Stylesheet
	}
	if overlay.Manifests.Application != nil {
		c.Manifests.Application = overlay.Manifests.Application
	}
	if overlay.Manifests.Loader != nil {
		c.Manifests.Loader = overlay.Manifests.Loader
	}
}

// BuildManifests builds the immutable manifest set from the configured file lists.
func (c *Config) BuildManifests() map[Category]Manifest {
	return map[Category]Manifest{
		Stylesheet:  NewManifest(Stylesheet, c.Manifests.Stylesheet...),
		Application: NewManifest(Application, c.Manifests.Application...),
		Loader:      NewManifest(Loader, c.Manifests.Loader...),
	}
}

func (c *Config) loadDefaults() {
	if len(c.Manifests.Stylesheet) == 0 {
		c.Manifests.Stylesheet = DefaultFiles(Stylesheet)
	}
	if len(c.Manifests.Application) == 0 {
		c.Manifests.Application = DefaultFiles(Application)
	}
	if len(c.Manifests.Loader) == 0 {
		c.Manifests.Loader = DefaultFiles(Loader)
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Cache); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Cache = &enabled
		}
	}
	if v := os.Getenv(env.Warm); v != "" {
		if warm, err := strconv.ParseBool(v); err == nil {
			c.Warm = &warm
		}
	}
}

func (c *Config) validate() error {
	lists := map[Category][]string{
		Stylesheet:  c.Manifests.Stylesheet,
		Application: c.Manifests.Application,
		Loader:      c.Manifests.Loader,
	}
	for category, files := range lists {
		for i, f := range files {
			if f == "" {
				return fmt.Errorf("manifests.%s[%d]: empty key", category, i)
			}
		}
	}
	return nil
}
