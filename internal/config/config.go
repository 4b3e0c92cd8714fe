// Package config loads the nanstat configuration file
// ($XDG_CONFIG_HOME/nanstat/config.yaml by default).
//
// All optional fields are pointers so "not set" can be told apart from a
// zero value; command-line flags override any field they explicitly set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Resolved when a field is absent.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultServerAddress = "127.0.0.1:8780"
	DefaultReadTimeout   = 30 * time.Second
	DefaultMaxBodyBytes  = 32 << 20
)

// Config mirrors config.yaml.
type Config struct {
	// Reductions
	DDoF *int `yaml:"ddof"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string         `yaml:"server_address"`
	ReadTimeout   *time.Duration `yaml:"read_timeout"`
	MaxBodyBytes  *int64         `yaml:"max_body_bytes"`
}

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// DefaultPath returns the per-user config location, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nanstat", "config.yaml")
}

// Load reads path. A missing file yields a zero Config and no error;
// malformed YAML or invalid values are errors.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field domains.
func (c Config) Validate() error {
	if c.DDoF != nil && *c.DDoF != 0 && *c.DDoF != 1 {
		return fmt.Errorf("ddof=%d (want 0 or 1): %w", *c.DDoF, ErrInvalid)
	}
	switch c.LogFormat {
	case "", "text", "json", "console", "pretty":
	default:
		return fmt.Errorf("log_format=%q: %w", c.LogFormat, ErrInvalid)
	}
	if c.ReadTimeout != nil && *c.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout=%s: %w", *c.ReadTimeout, ErrInvalid)
	}
	if c.MaxBodyBytes != nil && *c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes=%d: %w", *c.MaxBodyBytes, ErrInvalid)
	}
	return nil
}

// Resolved returns a copy with every absent field set to its default.
func (c Config) Resolved() Config {
	out := c
	if out.DDoF == nil {
		d := 0
		out.DDoF = &d
	}
	if out.LogLevel == "" {
		out.LogLevel = DefaultLogLevel
	}
	if out.LogFormat == "" {
		out.LogFormat = DefaultLogFormat
	}
	if out.ServerAddress == "" {
		out.ServerAddress = DefaultServerAddress
	}
	if out.ReadTimeout == nil {
		t := DefaultReadTimeout
		out.ReadTimeout = &t
	}
	if out.MaxBodyBytes == nil {
		n := int64(DefaultMaxBodyBytes)
		out.MaxBodyBytes = &n
	}
	return out
}
