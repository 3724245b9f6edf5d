// Package config loads and stores the wxlookup configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/wxlookup/internal/weather"
)

// Environment variables that override the config file.
const (
	EnvHome     = "WXLOOKUP_HOME"
	EnvEndpoint = "WXLOOKUP_ENDPOINT"
	EnvLogLevel = "WXLOOKUP_LOG_LEVEL"
)

const (
	configFileName = "config.yaml"
	logFileName    = "wxlookup.log"
	outputTable    = "table"
	outputJSON     = "json"
)

// Config is the on-disk configuration.
type Config struct {
	Service ServiceConfig `yaml:"service" json:"service"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Output  OutputConfig  `yaml:"output"  json:"output"`
}

// ServiceConfig points at the weather lookup service.
type ServiceConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url"`
	Timeout time.Duration `yaml:"timeout"  json:"timeout"`
}

// LoggingConfig controls log level, format and destination.
// An empty File logs to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown config key")

// New returns a Config populated with defaults.
func New() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", logFileName)
	}
	return &Config{
		Service: ServiceConfig{
			BaseURL: weather.DefaultBaseURL,
			Timeout: weather.DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   logFile,
		},
		Output: OutputConfig{
			DefaultFormat: outputTable,
		},
	}
}

// Load returns defaults overlaid with the file at path and then with
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile returns defaults overlaid with the file at path, without
// environment overrides. Use it when the result is written back to disk.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Service.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("service.base_url must not be empty")
	}
	if !strings.HasPrefix(c.Service.BaseURL, "http://") && !strings.HasPrefix(c.Service.BaseURL, "https://") {
		return fmt.Errorf("service.base_url must be an http(s) URL, got %q", c.Service.BaseURL)
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("service.timeout must be >= 0, got %s", c.Service.Timeout)
	}
	switch c.Output.DefaultFormat {
	case outputTable, outputJSON:
	default:
		return fmt.Errorf("output.default_format must be %q or %q, got %q",
			outputTable, outputJSON, c.Output.DefaultFormat)
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Keys lists the dotted keys accepted by Get and Set, in display order.
func Keys() []string {
	return []string{
		"service.base_url",
		"service.timeout",
		"logging.level",
		"logging.format",
		"logging.file",
		"output.default_format",
	}
}

// Get returns the string form of a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "service.base_url":
		return c.Service.BaseURL, nil
	case "service.timeout":
		return c.Service.Timeout.String(), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted key from its string form and validates the result.
// Timeouts accept Go durations ("5s") or whole seconds ("5").
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "service.base_url":
		next.Service.BaseURL = value
	case "service.timeout":
		d, err := parseTimeout(value)
		if err != nil {
			return err
		}
		next.Service.Timeout = d
	case "logging.level":
		next.Logging.Level = value
	case "logging.format":
		next.Logging.Format = value
	case "logging.file":
		next.Logging.File = value
	case "output.default_format":
		next.Output.DefaultFormat = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func parseTimeout(value string) (time.Duration, error) {
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", value, err)
	}
	return d, nil
}
