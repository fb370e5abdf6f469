package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geezee/YoutubeJS/internal/media"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ScriptIndex != 13 {
		t.Errorf("default script_index = %d, want 13", cfg.ScriptIndex)
	}
	if cfg.Format != "auto" {
		t.Errorf("default format = %q, want auto", cfg.Format)
	}
	if cfg.LinkWidth != 100 {
		t.Errorf("default link_width = %d, want 100", cfg.LinkWidth)
	}
	if cfg.Debug {
		t.Error("default debug should be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"negative script index", func(c *Config) { c.ScriptIndex = -1 }, true},
		{"zero script index", func(c *Config) { c.ScriptIndex = 0 }, false},
		{"invalid format", func(c *Config) { c.Format = "xml" }, true},
		{"valid html", func(c *Config) { c.Format = "html" }, false},
		{"valid AUTO", func(c *Config) { c.Format = "AUTO" }, false},
		{"zero link width", func(c *Config) { c.LinkWidth = 0 }, true},
		{"bad native pattern", func(c *Config) { c.Patterns.Native.Blob = "(" }, true},
		{"plugin pattern without group", func(c *Config) { c.Patterns.Plugin.URL = `url=\S+` }, true},
		{"valid override", func(c *Config) { c.Patterns.Plugin.FormatID = `fmt=(\d+)` }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "youtubejs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	writeConfig(t, `
script_index = 7
format = "html"
link_width = 60
debug = true

[patterns.plugin]
itag = 'fmt=(\d+)'
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ScriptIndex != 7 {
		t.Errorf("script_index = %d, want 7", cfg.ScriptIndex)
	}
	if cfg.Format != "html" {
		t.Errorf("format = %q, want html", cfg.Format)
	}
	if cfg.LinkWidth != 60 {
		t.Errorf("link_width = %d, want 60", cfg.LinkWidth)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}

	set, err := cfg.PatternSet(media.PluginBased)
	if err != nil {
		t.Fatalf("PatternSet() error: %v", err)
	}
	if set.FormatID.String() != `fmt=(\d+)` {
		t.Errorf("plugin itag rule = %q, want override", set.FormatID.String())
	}
}

func TestLoadInvalid(t *testing.T) {
	writeConfig(t, `script_index = -3`)

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a negative script_index")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.ScriptIndex != 13 {
		t.Errorf("missing file should return defaults, got script_index = %d", cfg.ScriptIndex)
	}
}
