package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	fc, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if fc.Practice.Lang != nil {
		t.Error("missing file should leave every key unset")
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[practice]\nexercize = 4\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "exercize") {
		t.Errorf("LoadFile() error = %v, want unknown key error", err)
	}
}

func TestLoad_Layers(t *testing.T) {
	path := writeConfig(t, `
[practice]
lang = "he"
exercises = 5
advance_delay = "500ms"

[storage]
db = "/tmp/from-file.db"
`)
	t.Setenv("SIMPLIFY_EXERCISES", "7")
	t.Setenv("SIMPLIFY_DB", "")
	t.Setenv("SIMPLIFY_LANG", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Lang != "he" {
		t.Errorf("Lang = %q, want he from file", cfg.Lang)
	}
	if cfg.Exercises != 7 {
		t.Errorf("Exercises = %d, want 7 from env", cfg.Exercises)
	}
	if cfg.AdvanceDelay != 500*time.Millisecond {
		t.Errorf("AdvanceDelay = %v, want 500ms", cfg.AdvanceDelay)
	}
	if cfg.DB != "/tmp/from-file.db" {
		t.Errorf("DB = %q, want file value", cfg.DB)
	}
	if cfg.Generator != GeneratorRandom {
		t.Errorf("Generator = %q, want default", cfg.Generator)
	}
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SIMPLIFY_EXERCISES", "three"},
		{"SIMPLIFY_ADVANCE_DELAY", "2 seconds"},
		{"SIMPLIFY_PREFETCH", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(func(k string) string {
				if k == tt.key {
					return tt.value
				}
				return ""
			})
			if err == nil {
				t.Errorf("ApplyEnv(%s=%q) should fail", tt.key, tt.value)
			}
		})
	}
}

func TestApplyFile_BadDuration(t *testing.T) {
	bad := "soon"
	cfg := Default()
	if err := cfg.ApplyFile(FileConfig{Practice: PracticeConfig{AdvanceDelay: &bad}}); err == nil {
		t.Error("ApplyFile() should reject a bad duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown lang", func(c *Config) { c.Lang = "fr" }},
		{"no exercises", func(c *Config) { c.Exercises = 0 }},
		{"too many exercises", func(c *Config) { c.Exercises = 51 }},
		{"negative delay", func(c *Config) { c.AdvanceDelay = -time.Second }},
		{"bad generator", func(c *Config) { c.Generator = "ai" }},
		{"bad hints", func(c *Config) { c.Hints = "always" }},
		{"zero prefetch", func(c *Config) { c.Prefetch = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestNeedsLLM(t *testing.T) {
	cfg := Default()
	if cfg.NeedsLLM() {
		t.Error("default config should not need an LLM")
	}
	cfg.Hints = HintsLLM
	if !cfg.NeedsLLM() {
		t.Error("LLM hints need an LLM")
	}
}

func TestTemplateDecodes(t *testing.T) {
	// Every key is commented out, so the template decodes to nothing set.
	var fc FileConfig
	if _, err := toml.Decode(Template(), &fc); err != nil {
		t.Fatalf("Template() does not decode: %v", err)
	}
	if fc.Practice.Exercises != nil {
		t.Error("template should not set any key")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/xdg", "simplify", "config.toml") {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
}
