// Package config loads and validates the TOML configuration file shared by
// the CLI and the HTTP server.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/layout"
	"github.com/sdankbar/jaqumal-graph/pkg/render"
)

// Cache backends selectable via the cache.backend key.
const (
	CacheBackendNone  = "none"
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Duration accepts TOML strings like "30s" or "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses text with [time.ParseDuration].
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config is the root of the configuration file.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// EngineConfig selects the external layout engine.
type EngineConfig struct {
	// Binary is the engine executable. Empty selects the platform default.
	Binary string `toml:"binary"`

	// DPI is the device scale layout results are published at.
	DPI float64 `toml:"dpi"`
}

// RenderConfig tunes preview rendering.
type RenderConfig struct {
	Format string `toml:"format"`
}

// CacheConfig selects and tunes the engine output cache.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`

	// Prefix namespaces cache keys so several deployments can share one
	// backend.
	Prefix string `toml:"prefix"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds Redis connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig holds the HTTP server and store settings used by serve.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// MongoURI enables the named layout store when set.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`

	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			DPI: graph.DefaultDPI,
		},
		Render: RenderConfig{
			Format: render.FormatSVG,
		},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			TTL:     Duration{layout.DefaultCacheTTL},
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MongoDatabase:   "jaqumal",
			ShutdownTimeout: Duration{10 * time.Second},
		},
	}
}

// Load reads the file at path on top of the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"config file %s has unknown key %s", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values; it does not reach out to any backend.
func (c Config) Validate() error {
	if err := errors.ValidateDPI(c.Engine.DPI); err != nil {
		return err
	}

	switch c.Render.Format {
	case render.FormatSVG, render.FormatPNG, render.FormatDOT:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"render format %q is not one of svg, png, dot", c.Render.Format)
	}

	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendFile:
	case CacheBackendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig,
				"cache backend redis requires cache.redis.addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache backend %q is not one of none, file, redis", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server addr must not be empty")
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server shutdown timeout must not be negative")
	}
	return nil
}
