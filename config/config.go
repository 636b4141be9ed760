// Package config provides loading and parsing of sigrid-panel.yaml
// configuration files. The configuration covers deployment-level settings
// (API endpoint, timeouts, cache backend); user credentials live in the
// store's settings, not here.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in the configuration file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config represents a sigrid-panel.yaml configuration file.
type Config struct {
	API     *APIConfig     `yaml:"api,omitempty"`
	Storage *StorageConfig `yaml:"storage,omitempty"`
}

// APIConfig configures the Sigrid API client.
type APIConfig struct {
	// BaseURL overrides the API root, e.g. for an on-premise installation.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout is the per-request HTTP timeout.
	// Format: Go duration string (e.g., "30s", "1m")
	// Default: 30s
	Timeout string `yaml:"timeout,omitempty"`
}

// StorageConfig selects and configures the persisted cache backend.
type StorageConfig struct {
	// Backend is "file" (default) or "redis".
	Backend string `yaml:"backend,omitempty"`

	// Path is the cache file location for the file backend.
	Path string `yaml:"path,omitempty"`

	// RedisURL is the connection string for the redis backend.
	RedisURL string `yaml:"redis_url,omitempty"`

	// RedisKeyPrefix namespaces cache keys for the redis backend.
	RedisKeyPrefix string `yaml:"redis_key_prefix,omitempty"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the internal consistency of the configuration.
func (c *Config) Validate() error {
	if c.Storage != nil {
		switch c.Storage.Backend {
		case "", BackendFile, BackendRedis:
		default:
			return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
		}
	}
	return nil
}

// GetBaseURL returns the configured API root, or "" when unset so the
// client default applies.
func (a *APIConfig) GetBaseURL() string {
	if a == nil {
		return ""
	}
	return a.BaseURL
}

// GetTimeout parses the timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (a *APIConfig) GetTimeout() time.Duration {
	if a == nil || a.Timeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetBackend returns the selected backend, defaulting to the file backend.
func (s *StorageConfig) GetBackend() string {
	if s == nil || s.Backend == "" {
		return BackendFile
	}
	return s.Backend
}

// GetPath returns the cache file path for the file backend.
// Default: sigrid-panel-cache.json in the working directory.
func (s *StorageConfig) GetPath() string {
	if s == nil || s.Path == "" {
		return "sigrid-panel-cache.json"
	}
	return s.Path
}

// GetRedisURL returns the redis connection string.
// Default: redis://localhost:6379.
func (s *StorageConfig) GetRedisURL() string {
	if s == nil || s.RedisURL == "" {
		return "redis://localhost:6379"
	}
	return s.RedisURL
}

// GetRedisKeyPrefix returns the redis key prefix.
// Default: sigrid-panel.
func (s *StorageConfig) GetRedisKeyPrefix() string {
	if s == nil || s.RedisKeyPrefix == "" {
		return "sigrid-panel"
	}
	return s.RedisKeyPrefix
}
