package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/prashikshan"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
	// DefaultDataDir is the directory for session state and queued drafts
	DefaultDataDir = ".prashikshan"

	// Environment variable overrides, highest precedence
	envBaseURL = "PRASHIKSHAN_API_URL"
	envTimeout = "PRASHIKSHAN_API_TIMEOUT"
	envDataDir = "PRASHIKSHAN_DATA_DIR"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/prashikshan/config.yaml)
// 3. Environment variables (PRASHIKSHAN_API_URL, PRASHIKSHAN_API_TIMEOUT,
//    PRASHIKSHAN_DATA_DIR)
func (l *Loader) Load() (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// Load user config
	userConfigPath := l.userConfigPath()
	if userConfig, err := LoadFromFile(userConfigPath); err == nil {
		l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
		config.Merge(userConfig)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
	}

	// Apply environment overrides
	if err := l.applyEnv(config); err != nil {
		return nil, err
	}

	// Resolve the data directory if not set
	if config.Data.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		config.Data.Dir = filepath.Join(home, DefaultDataDir)
		l.logger.Debug("Using default data directory", slog.String("path", config.Data.Dir))
	}

	// Validate final config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()

	// Check if it already exists
	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	// Create default config
	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// applyEnv overlays environment variable overrides onto config
func (l *Loader) applyEnv(config *Config) error {
	if v := os.Getenv(envBaseURL); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envTimeout, err)
		}
		config.API.Timeout = d
	}
	if v := os.Getenv(envDataDir); v != "" {
		config.Data.Dir = v
	}
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
