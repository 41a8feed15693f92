// Package config handles the lattice.toml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the marker file that identifies a lattice project root.
const FileName = "lattice.toml"

// Config represents a project's lattice.toml.
type Config struct {
	Web      WebConfig      `toml:"web"`
	API      APIConfig      `toml:"api"`
	Generate GenerateConfig `toml:"generate"`
	UI       UIConfig       `toml:"ui"`
}

// WebConfig configures the web side of the project.
type WebConfig struct {
	// Src is the web-side source directory, relative to the project root.
	Src string `toml:"src"`

	// Routes is the route table file, relative to the project root.
	Routes string `toml:"routes"`
}

// APIConfig configures the api side of the project.
type APIConfig struct {
	// Src is the api-side source directory, relative to the project root.
	Src string `toml:"src"`
}

// GenerateConfig holds project-wide generator defaults.
type GenerateConfig struct {
	// Tests controls whether generators emit test files by default.
	Tests *bool `toml:"tests"`

	// Stories controls whether generators emit stories files by default.
	Stories *bool `toml:"stories"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Defaults used when lattice.toml omits a value.
const (
	DefaultWebSrc = "web/src"
	DefaultRoutes = "web/src/Routes.jsx"
	DefaultAPISrc = "api/src"
)

// WebSrc returns the configured web source directory or the default.
func (c *Config) WebSrc() string {
	if c.Web.Src != "" {
		return c.Web.Src
	}
	return DefaultWebSrc
}

// RoutesFile returns the configured route table file or the default.
func (c *Config) RoutesFile() string {
	if c.Web.Routes != "" {
		return c.Web.Routes
	}
	return DefaultRoutes
}

// APISrc returns the configured api source directory or the default.
func (c *Config) APISrc() string {
	if c.API.Src != "" {
		return c.API.Src
	}
	return DefaultAPISrc
}

// TestsDefault reports whether generators should emit test files when the
// flag is not given on the command line.
func (c *Config) TestsDefault() bool {
	if c.Generate.Tests != nil {
		return *c.Generate.Tests
	}
	return true
}

// StoriesDefault reports whether generators should emit stories files when
// the flag is not given on the command line.
func (c *Config) StoriesDefault() bool {
	if c.Generate.Stories != nil {
		return *c.Generate.Stories
	}
	return true
}

// Load loads lattice.toml from the given project root.
// Returns a default config if the file doesn't exist.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// CreateDefault writes a default lattice.toml at the project root if one
// doesn't exist. Returns true if the file was created.
func CreateDefault(root string) (bool, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	defaultConfig := `# Lattice project configuration

[web]
# src = "web/src"
# routes = "web/src/Routes.jsx"

[api]
# src = "api/src"

[generate]
# Emit test/stories files by default; override per-run with --tests/--stories.
# tests = true
# stories = true

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return true, nil
}
