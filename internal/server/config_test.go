package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphtier/graphtier/pkg/layout"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
addr = "127.0.0.1:9000"
cache_size = 25
shutdown_timeout_seconds = 3

[layout]
direction = "LR"
node_separation = 50.0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q, want 127.0.0.1:9000", cfg.Addr)
	}
	if cfg.CacheSize != 25 {
		t.Errorf("CacheSize = %d, want 25", cfg.CacheSize)
	}
	if got := cfg.ShutdownTimeout(); got != 3*time.Second {
		t.Errorf("ShutdownTimeout() = %v, want 3s", got)
	}
	if cfg.Layout.Direction != layout.DirectionLR {
		t.Errorf("Layout.Direction = %q, want LR", cfg.Layout.Direction)
	}
	if cfg.Layout.NodeSeparation != 50 {
		t.Errorf("Layout.NodeSeparation = %v, want 50", cfg.Layout.NodeSeparation)
	}
}

func TestLoadConfigMissingKeysKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `addr = ":7777"`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Addr != ":7777" {
		t.Errorf("Addr = %q, want :7777", cfg.Addr)
	}
	if cfg.CacheSize != DefaultCacheSize {
		t.Errorf("CacheSize = %d, want default %d", cfg.CacheSize, DefaultCacheSize)
	}
	if cfg.Layout.Direction != layout.DirectionTB {
		t.Errorf("Layout.Direction = %q, want the TB default", cfg.Layout.Direction)
	}
	if got := cfg.ShutdownTimeout(); got != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout() = %v, want default %v", got, DefaultShutdownTimeout)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadConfig() should fail for a missing file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, `addr = [broken`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail for malformed TOML")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.Layout != layout.DefaultOptions() {
		t.Errorf("Layout = %+v, want defaults", cfg.Layout)
	}
}
