// Package config holds crashlens configuration. Defaults are overlaid by an
// optional YAML file, then by environment variables; command-line flags win
// over everything and are applied by the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all crashlens configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig selects and configures the event-log source.
type SourceConfig struct {
	Provider   string `yaml:"provider"`    // "windows" or "replay"
	ReplayFile string `yaml:"replay_file"` // NDJSON dump path for the replay source
}

// SearchConfig holds search defaults the CLI can override per run.
type SearchConfig struct {
	DayWindow int    `yaml:"day_window"` // 2, 3, 7 or 14
	DeepScan  bool   `yaml:"deep_scan"`
	Dedup     bool   `yaml:"dedup"`
	Timeout   string `yaml:"timeout"` // Go duration string, "" = none
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "ndjson"
	File   string `yaml:"file"`   // also write the report here when set
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{Provider: "windows"},
		Search: SearchConfig{DayWindow: 2},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// DefaultPath when present, then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := DefaultPath(); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns the per-user config file location, or "" when the user
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crashlens", "config.yaml")
}

// TimeoutDuration parses the configured search timeout. Empty or malformed
// values mean no timeout.
func (c SearchConfig) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// loadFile overlays cfg with the YAML file at path. A missing file is not an
// error; a malformed one is.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays cfg with CRASHLENS_* environment variables.
func applyEnv(cfg *Config) {
	cfg.Source.Provider = getenv("CRASHLENS_SOURCE", cfg.Source.Provider)
	cfg.Source.ReplayFile = getenv("CRASHLENS_REPLAY_FILE", cfg.Source.ReplayFile)
	cfg.Search.DayWindow = getenvInt("CRASHLENS_DAYS", cfg.Search.DayWindow)
	cfg.Search.DeepScan = getenvBool("CRASHLENS_DEEP_SCAN", cfg.Search.DeepScan)
	cfg.Search.Dedup = getenvBool("CRASHLENS_DEDUP", cfg.Search.Dedup)
	cfg.Search.Timeout = getenv("CRASHLENS_TIMEOUT", cfg.Search.Timeout)
	cfg.Output.Format = getenv("CRASHLENS_FORMAT", cfg.Output.Format)
	cfg.Output.File = getenv("CRASHLENS_OUT", cfg.Output.File)
	cfg.Log.Level = getenv("CRASHLENS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.JSON = getenvBool("CRASHLENS_LOG_JSON", cfg.Log.JSON)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
