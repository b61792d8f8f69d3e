// Package config loads and saves the catgraph configuration file.
//
// The file lives at $XDG_CONFIG_HOME/catgraph/config.toml (falling back to
// ~/.config) and is optional: a missing file yields [Default]. Command-line
// flags override file values, and a few CATGRAPH_* environment variables
// override both for container deployments (see [Config.ApplyEnv]).
//
//	[layout]
//	width = 800.0
//	height = 600.0
//	iterations = 100
//	seed = 42
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "catgraph"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Environment variables that override file values.
const (
	EnvRedisAddr = "CATGRAPH_REDIS_ADDR"
	EnvMongoURI  = "CATGRAPH_MONGO_URI"
	EnvListen    = "CATGRAPH_LISTEN"
)

// Config is the whole configuration file.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	Catalog CatalogConfig `toml:"catalog"`
	Server  ServerConfig  `toml:"server"`
}

// LayoutConfig holds the force parameters and the default seed and filter.
type LayoutConfig struct {
	force.Config
	Seed     uint64 `toml:"seed"`
	Category string `toml:"category"`
}

// RenderConfig controls artifact output.
type RenderConfig struct {
	Formats  []string `toml:"formats"`
	Detailed bool     `toml:"detailed"`
	Labels   bool     `toml:"labels"`
	Scale    float64  `toml:"scale"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file", "redis", "none"
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
	TTL           string `toml:"ttl"`
}

// CatalogConfig locates the product catalog.
type CatalogConfig struct {
	File       string `toml:"file"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures catgraph serve.
type ServerConfig struct {
	Addr    string `toml:"addr"`
	Timeout string `toml:"timeout"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{Config: force.DefaultConfig(), Seed: pipeline.DefaultSeed},
		Render: RenderConfig{Formats: []string{pipeline.FormatSVG}, Scale: pipeline.DefaultScale},
		Cache:  CacheConfig{Backend: CacheFile, RedisAddr: "localhost:6379", TTL: "168h"},
		Catalog: CatalogConfig{
			Database:   AppName,
			Collection: "products",
		},
		Server: ServerConfig{Addr: ":8080", Timeout: "30s"},
	}
}

// Dir returns the catgraph config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CacheDir returns the default file cache directory.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName)
}

// Load reads the file at path over the defaults. A missing file is not an
// error. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if err := c.Layout.Force().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[layout]")
	}
	if err := errors.ValidateCategory(c.Layout.Category); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return err
	}
	if _, err := c.Server.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// ApplyEnv overrides file values with CATGRAPH_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.Backend = CacheRedis
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.Catalog.MongoURI = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Server.Addr = v
	}
}

// Force returns the force configuration, or the defaults when the section
// is entirely zero.
func (l *LayoutConfig) Force() force.Config {
	return pipeline.WithDefaults(l.Config)
}

// Options returns pipeline options seeded from the file.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Category: c.Layout.Category,
		Config:   c.Layout.Force(),
		Seed:     c.Layout.Seed,
		Formats:  slices.Clone(c.Render.Formats),
		Detailed: c.Render.Detailed,
		Labels:   c.Render.Labels,
		Scale:    c.Render.Scale,
	}
}

// TTLDuration parses the cache TTL. Empty means no expiration.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	return parseDuration("cache.ttl", c.TTL)
}

// TimeoutDuration parses the per-request timeout. Empty means none.
func (s ServerConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("server.timeout", s.Timeout)
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid %s %q", key, s)
	}
	return d, nil
}
