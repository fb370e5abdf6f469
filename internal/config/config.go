// Package config handles TOML-based configuration loading and validation.
// TOML is parsed as data only; pattern overrides are compiled, never run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/geezee/YoutubeJS/internal/locate"
	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/patterns"
	"github.com/geezee/YoutubeJS/internal/render"
)

// Config holds all application configuration.
type Config struct {
	ScriptIndex int            `toml:"script_index"`
	Format      string         `toml:"format"`
	LinkWidth   int            `toml:"link_width"`
	UserAgent   string         `toml:"user_agent"`
	Debug       bool           `toml:"debug"`
	Patterns    PatternOptions `toml:"patterns"`
}

// PatternOptions overrides the built-in rules per page layout.
type PatternOptions struct {
	Native patterns.Rules `toml:"native"`
	Plugin patterns.Rules `toml:"plugin"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ScriptIndex: locate.DefaultScriptIndex,
		Format:      "auto",
		LinkWidth:   render.DefaultLinkWidth,
		Debug:       false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "youtubejs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "youtubejs"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.ScriptIndex < 0 {
		return fmt.Errorf("script_index must not be negative, got %d", c.ScriptIndex)
	}

	if !strings.EqualFold(c.Format, "auto") {
		if _, err := render.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}

	if c.LinkWidth <= 0 {
		return fmt.Errorf("link_width must be positive, got %d", c.LinkWidth)
	}

	if _, err := c.PatternSet(media.NativePlayback); err != nil {
		return fmt.Errorf("patterns.native: %w", err)
	}
	if _, err := c.PatternSet(media.PluginBased); err != nil {
		return fmt.Errorf("patterns.plugin: %w", err)
	}

	return nil
}

// PatternSet compiles the rules for a layout, applying any overrides.
func (c *Config) PatternSet(v media.Variant) (*patterns.Set, error) {
	if v == media.NativePlayback {
		return patterns.Compile(v, c.Patterns.Native)
	}
	return patterns.Compile(v, c.Patterns.Plugin)
}
