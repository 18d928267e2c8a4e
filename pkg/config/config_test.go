package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/render"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[engine]
binary = "/usr/local/bin/dot"
dpi = 72.0

[cache]
backend = "redis"
ttl = "36h"
prefix = "staging"

[cache.redis]
addr = "localhost:6379"
db = 2

[server]
addr = ":9000"
mongo_uri = "mongodb://localhost:27017"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.Binary != "/usr/local/bin/dot" {
		t.Errorf("engine binary = %q", cfg.Engine.Binary)
	}
	if cfg.Engine.DPI != 72 {
		t.Errorf("engine dpi = %v, want 72", cfg.Engine.DPI)
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 36*time.Hour {
		t.Errorf("cache ttl = %v, want 36h", cfg.Cache.TTL)
	}
	if cfg.Cache.Prefix != "staging" {
		t.Errorf("cache prefix = %q", cfg.Cache.Prefix)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis settings = %+v", cfg.Cache.Redis)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("mongo uri = %q", cfg.Server.MongoURI)
	}

	// Keys the file does not set keep their defaults.
	if cfg.Render.Format != render.FormatSVG {
		t.Errorf("render format = %q, want %q", cfg.Render.Format, render.FormatSVG)
	}
	if cfg.Server.MongoDatabase != "jaqumal" {
		t.Errorf("mongo database = %q, want jaqumal", cfg.Server.MongoDatabase)
	}
	if cfg.Server.ShutdownTimeout.Duration != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[engine]\nbianry = \"dot\"\n")

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[engine\n")

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadMalformedDuration(t *testing.T) {
	path := writeConfig(t, "[cache]\nttl = \"soon\"\n")

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero dpi", func(c *Config) { c.Engine.DPI = 0 }, true},
		{"unknown render format", func(c *Config) { c.Render.Format = "pdf" }, true},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis backend without addr", func(c *Config) { c.Cache.Backend = CacheBackendRedis }, true},
		{"redis backend with addr", func(c *Config) {
			c.Cache.Backend = CacheBackendRedis
			c.Cache.Redis.Addr = "localhost:6379"
		}, false},
		{"negative ttl", func(c *Config) { c.Cache.TTL = Duration{-time.Hour} }, true},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = Duration{-time.Second} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
