package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default base URL http://localhost:8000, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", cfg.API.Timeout)
	}
	if cfg.Sync.Debounce != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %v", cfg.Sync.Debounce)
	}
	if cfg.Metrics.Listen != "" {
		t.Errorf("expected metrics disabled by default, got %s", cfg.Metrics.Listen)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URL",
			modify:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "relative base URL",
			modify:  func(c *Config) { c.API.BaseURL = "localhost:8000" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Sync.Debounce = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
api:
  base_url: "https://prashikshan.example.edu"
  timeout: 30s
data:
  dir: "/var/lib/prashikshan"
sync:
  debounce: 2s
metrics:
  listen: "127.0.0.1:9109"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.API.BaseURL != "https://prashikshan.example.edu" {
		t.Errorf("expected base URL https://prashikshan.example.edu, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.API.Timeout)
	}
	if cfg.Data.Dir != "/var/lib/prashikshan" {
		t.Errorf("expected data dir /var/lib/prashikshan, got %s", cfg.Data.Dir)
	}
	if cfg.Sync.Debounce != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Sync.Debounce)
	}
	if cfg.Metrics.Listen != "127.0.0.1:9109" {
		t.Errorf("expected metrics listen 127.0.0.1:9109, got %s", cfg.Metrics.Listen)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		API: APIConfig{
			BaseURL: "https://override.example.edu",
		},
		Data: DataConfig{
			Dir: "/override/data",
		},
	}

	base.Merge(override)

	if base.API.BaseURL != "https://override.example.edu" {
		t.Errorf("expected base URL https://override.example.edu, got %s", base.API.BaseURL)
	}
	// Timeout should remain from base since override didn't set it
	if base.API.Timeout != 15*time.Second {
		t.Errorf("expected timeout to remain default, got %v", base.API.Timeout)
	}
	if base.Data.Dir != "/override/data" {
		t.Errorf("expected data dir /override/data, got %s", base.Data.Dir)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://saved.example.edu"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.API.BaseURL != "https://saved.example.edu" {
		t.Errorf("expected base URL https://saved.example.edu, got %s", loaded.API.BaseURL)
	}
}

func TestLoaderEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRASHIKSHAN_API_URL", "https://env.example.edu")
	t.Setenv("PRASHIKSHAN_API_TIMEOUT", "45s")
	t.Setenv("PRASHIKSHAN_DATA_DIR", "/env/data")

	cfg, err := NewLoader(nil).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://env.example.edu" {
		t.Errorf("expected base URL https://env.example.edu, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.API.Timeout)
	}
	if cfg.Data.Dir != "/env/data" {
		t.Errorf("expected data dir /env/data, got %s", cfg.Data.Dir)
	}
}

func TestLoaderDefaultDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PRASHIKSHAN_API_URL", "")
	t.Setenv("PRASHIKSHAN_API_TIMEOUT", "")
	t.Setenv("PRASHIKSHAN_DATA_DIR", "")

	cfg, err := NewLoader(nil).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(home, DefaultDataDir)
	if cfg.Data.Dir != want {
		t.Errorf("expected data dir %s, got %s", want, cfg.Data.Dir)
	}
}
