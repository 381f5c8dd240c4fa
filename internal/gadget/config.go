package gadget

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Env maps environment variable names for gadget configuration.
type Env struct {
	BasePath string
}

// Config controls where the gadget endpoints are mounted.
type Config struct {
	BasePath string `toml:"base_path"`
}

// Overlaps reports whether path collides with the gadget mount: the bare prefix,
// an ancestor of it, or one of the concrete gadget routes.
func (c *Config) Overlaps(path string) bool {
	if c.BasePath != "" && (path == c.BasePath || strings.HasPrefix(c.BasePath, path+"/")) {
		return true
	}
	return slices.Contains(c.RoutePaths(), path)
}

// RoutePaths returns the request paths served under BasePath.
func (c *Config) RoutePaths() []string {
	return []string{
		c.BasePath + "/",
		c.BasePath + StylesheetPath,
		c.BasePath + ApplicationPath,
		c.BasePath + LoaderPath,
	}
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
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *Config) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/gadget"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.BasePath); v != "" {
		c.BasePath = v
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	if c.BasePath != "/" && strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("base_path must not end with /: %s", c.BasePath)
	}
	if c.BasePath == "/" {
		c.BasePath = ""
	}
	return nil
}
