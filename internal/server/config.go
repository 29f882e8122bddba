package server

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/graphtier/graphtier/pkg/layout"
)

// Defaults for the HTTP server.
const (
	DefaultAddr            = ":8465"
	DefaultCacheSize       = layout.DefaultCacheSize
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the HTTP server configuration. It is loaded from a TOML file
// with LoadConfig, or constructed directly for embedded use.
type Config struct {
	// Addr is the listen address, e.g. ":8465" or "127.0.0.1:8465".
	Addr string `toml:"addr"`

	// CacheSize bounds the number of memoized layouts.
	CacheSize int `toml:"cache_size"`

	// ShutdownTimeoutSeconds bounds graceful shutdown. Zero means the default.
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`

	// Layout provides server-wide default layout options. Request bodies may
	// override individual fields.
	Layout layout.Options `toml:"layout"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:      DefaultAddr,
		CacheSize: DefaultCacheSize,
		Layout:    layout.DefaultOptions(),
	}
}

// ShutdownTimeout returns the configured graceful shutdown bound.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return DefaultShutdownTimeout
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LoadConfig reads a TOML config file on top of the defaults. Missing keys
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	return cfg, nil
}
