// Package config provides configuration loading and management for the
// Prashikshan CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Data    DataConfig    `yaml:"data"`
	Sync    SyncConfig    `yaml:"sync"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig configures the Prashikshan backend connection
type APIConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:8000)
	BaseURL string `yaml:"base_url"`
	// Timeout is the maximum time to wait for API responses
	Timeout time.Duration `yaml:"timeout"`
}

// DataConfig configures local state storage
type DataConfig struct {
	// Dir is where session tokens and queued logbook drafts live
	// (default: ~/.prashikshan)
	Dir string `yaml:"dir"`
}

// SyncConfig configures the draft sync watcher
type SyncConfig struct {
	// Debounce is how long the watcher waits after a draft change before
	// syncing
	Debounce time.Duration `yaml:"debounce"`
}

// MetricsConfig configures the optional metrics endpoint
type MetricsConfig struct {
	// Listen is the address to serve Prometheus metrics on
	// (empty = disabled)
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 15 * time.Second,
		},
		Data: DataConfig{
			Dir: "", // Resolved to ~/.prashikshan at load time
		},
		Sync: SyncConfig{
			Debounce: 500 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Listen: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL: %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.Sync.Debounce < 0 {
		return fmt.Errorf("sync.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// API
	if other.API.BaseURL != "" {
		c.API.BaseURL = other.API.BaseURL
	}
	if other.API.Timeout != 0 {
		c.API.Timeout = other.API.Timeout
	}

	// Data
	if other.Data.Dir != "" {
		c.Data.Dir = other.Data.Dir
	}

	// Sync
	if other.Sync.Debounce != 0 {
		c.Sync.Debounce = other.Sync.Debounce
	}

	// Metrics
	if other.Metrics.Listen != "" {
		c.Metrics.Listen = other.Metrics.Listen
	}
}
