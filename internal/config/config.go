// Package config loads practice settings from defaults, a TOML file and
// SIMPLIFY_* environment variables. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/simplify/internal/feedback"
)

// Generator choices.
const (
	GeneratorRandom = "random"
	GeneratorLLM    = "llm"
)

// Hint choices.
const (
	HintsRule = "rule"
	HintsLLM  = "llm"
	HintsOff  = "off"
)

const envPrefix = "SIMPLIFY_"

// Config is the effective configuration.
type Config struct {
	Lang         string
	Exercises    int
	AdvanceDelay time.Duration
	Generator    string
	Hints        string

	// Prefetch is the number of LLM exercises kept ready.
	Prefetch int

	// DB is the practice log path. Empty means the default location.
	DB string

	// LogFile receives the JSON debug log. Empty disables it.
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lang:         feedback.DefaultLanguage,
		Exercises:    3,
		AdvanceDelay: 2 * time.Second,
		Generator:    GeneratorRandom,
		Hints:        HintsRule,
		Prefetch:     3,
	}
}

// FileConfig represents the TOML configuration file. Pointer fields tell
// an absent key apart from a zero value.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Storage  StorageConfig  `toml:"storage"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Lang         *string `toml:"lang"`
	Exercises    *int    `toml:"exercises"`
	AdvanceDelay *string `toml:"advance_delay"`
	Generator    *string `toml:"generator"`
	Hints        *string `toml:"hints"`
	Prefetch     *int    `toml:"prefetch"`
}

// StorageConfig maps file locations.
type StorageConfig struct {
	DB      *string `toml:"db"`
	LogFile *string `toml:"log_file"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return fc, nil
}

// Load returns defaults overlaid with the file at path and then the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	fc, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyFile(fc); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyFile overlays the keys present in fc.
func (c *Config) ApplyFile(fc FileConfig) error {
	p := fc.Practice
	setString(&c.Lang, p.Lang)
	setInt(&c.Exercises, p.Exercises)
	setString(&c.Generator, p.Generator)
	setString(&c.Hints, p.Hints)
	setInt(&c.Prefetch, p.Prefetch)
	if p.AdvanceDelay != nil {
		d, err := time.ParseDuration(*p.AdvanceDelay)
		if err != nil {
			return fmt.Errorf("advance_delay: %w", err)
		}
		c.AdvanceDelay = d
	}
	setString(&c.DB, fc.Storage.DB)
	setString(&c.LogFile, fc.Storage.LogFile)
	return nil
}

// ApplyEnv overlays SIMPLIFY_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "LANG"); v != "" {
		c.Lang = v
	}
	if v := getenv(envPrefix + "EXERCISES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sEXERCISES: %w", envPrefix, err)
		}
		c.Exercises = n
	}
	if v := getenv(envPrefix + "ADVANCE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sADVANCE_DELAY: %w", envPrefix, err)
		}
		c.AdvanceDelay = d
	}
	if v := getenv(envPrefix + "GENERATOR"); v != "" {
		c.Generator = v
	}
	if v := getenv(envPrefix + "HINTS"); v != "" {
		c.Hints = v
	}
	if v := getenv(envPrefix + "PREFETCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPREFETCH: %w", envPrefix, err)
		}
		c.Prefetch = n
	}
	if v := getenv(envPrefix + "DB"); v != "" {
		c.DB = v
	}
	if v := getenv(envPrefix + "LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks value ranges and choices.
func (c Config) Validate() error {
	if !feedback.Supported(c.Lang) {
		return fmt.Errorf("lang must be one of %s, got %q", strings.Join(feedback.Languages(), ", "), c.Lang)
	}
	if c.Exercises < 1 || c.Exercises > 50 {
		return fmt.Errorf("exercises must be between 1 and 50, got %d", c.Exercises)
	}
	if c.AdvanceDelay < 0 || c.AdvanceDelay > time.Minute {
		return fmt.Errorf("advance_delay must be between 0s and 1m, got %s", c.AdvanceDelay)
	}
	if !slices.Contains([]string{GeneratorRandom, GeneratorLLM}, c.Generator) {
		return fmt.Errorf("generator must be %q or %q, got %q", GeneratorRandom, GeneratorLLM, c.Generator)
	}
	if !slices.Contains([]string{HintsRule, HintsLLM, HintsOff}, c.Hints) {
		return fmt.Errorf("hints must be %q, %q or %q, got %q", HintsRule, HintsLLM, HintsOff, c.Hints)
	}
	if c.Prefetch < 1 || c.Prefetch > 20 {
		return fmt.Errorf("prefetch must be between 1 and 20, got %d", c.Prefetch)
	}
	return nil
}

// NeedsLLM reports whether any feature is configured to call an LLM.
func (c Config) NeedsLLM() bool {
	return c.Generator == GeneratorLLM || c.Hints == HintsLLM
}

// Template is a commented config file listing every key with its default.
func Template() string {
	d := Default()
	return fmt.Sprintf(`# simplify configuration
# Uncomment a value to enable it. CLI flags and SIMPLIFY_* variables override config values.
# LLM provider settings and API keys are read from the environment only.

[practice]
# lang = %q            # Feedback language: en or he
# exercises = %d          # Exercises per session
# advance_delay = %q   # Pause before the next exercise
# generator = %q   # random or llm
# hints = %q         # rule, llm or off
# prefetch = %d           # LLM exercises kept ready

[storage]
# db = "/path/to/simplify.db"
# log_file = "/path/to/simplify.log"
`, d.Lang, d.Exercises, d.AdvanceDelay.String(), d.Generator, d.Hints, d.Prefetch)
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func setInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}
