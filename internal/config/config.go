// Package config provides configuration loading and validation for the CLI and API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultConcurrency  = 4
	DefaultMaxFileSize  = 10 << 20 // 10 MiB
	DefaultPort         = 8080
	DefaultFetchTimeout = 30 * time.Second
)

// Config represents the importer configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for <name>.resume.json files
	Pretty bool   `json:"pretty,omitempty"`  // Indent JSON output

	// Limits
	Concurrency int   `json:"concurrency,omitempty" validate:"gte=0,lte=64"`   // Parallel imports
	MaxFileSize int64 `json:"max_file_size,omitempty" validate:"gte=0"`        // Bytes accepted per document
	Port        int   `json:"port,omitempty" validate:"gte=0,lte=65535"`       // API listen port

	// Behavior
	ValidateOutput bool     `json:"validate,omitempty"`      // Run struct and JSON Schema checks on results
	FailFast       bool     `json:"fail_fast,omitempty"`     // Stop a batch at the first failed import
	Verbose        bool     `json:"verbose,omitempty"`       // Debug logging and summaries
	UseBrowser     bool     `json:"use_browser,omitempty"`   // Render URL sources with a headless browser
	FetchTimeout   Duration `json:"fetch_timeout,omitempty"` // Per-URL fetch timeout, e.g. "15s"
}

// Duration is a time.Duration that unmarshals from a JSON string such as "30s".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(b))
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON writes the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Concurrency:  DefaultConcurrency,
		MaxFileSize:  DefaultMaxFileSize,
		Port:         DefaultPort,
		FetchTimeout: Duration(DefaultFetchTimeout),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
	}

	if c.OutDir != "" {
		info, err := os.Stat(c.OutDir)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: out_dir is not a directory: %s", c.OutDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from RESUME_IMPORT_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("RESUME_IMPORT_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v, ok := envInt("RESUME_IMPORT_CONCURRENCY"); ok {
		c.Concurrency = v
	}
	if v, ok := envInt("RESUME_IMPORT_MAX_FILE_SIZE"); ok {
		c.MaxFileSize = int64(v)
	}
	if v, ok := envInt("RESUME_IMPORT_PORT"); ok {
		c.Port = v
	}
	if v, ok := envBool("RESUME_IMPORT_USE_BROWSER"); ok {
		c.UseBrowser = v
	}
	if v, ok := envBool("RESUME_IMPORT_VERBOSE"); ok {
		c.Verbose = v
	}
	if v := os.Getenv("RESUME_IMPORT_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.FetchTimeout = Duration(d)
		}
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
