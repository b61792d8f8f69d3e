package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Layout.Force() != force.DefaultConfig() {
		t.Errorf("Force() = %+v", cfg.Layout.Force())
	}
	if ttl, _ := cfg.Cache.TTLDuration(); ttl != 7*24*time.Hour {
		t.Errorf("TTL = %v", ttl)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadKeepsZeroTunables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
margin = 0.0
damping = 0.0
link_span = 0
snapshot_every = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := cfg.Layout.Force()
	if f.Margin != 0 || f.Damping != 0 || f.LinkSpan != 0 || f.SnapshotEvery != 0 {
		t.Errorf("zero values replaced: %+v", f)
	}
	if f.Width != force.DefaultWidth || f.Iterations != force.DefaultIterations {
		t.Errorf("absent keys lost their defaults: %+v", f)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
width = 1200.0
iterations = 250
seed = 7
category = "Audio"

[render]
formats = ["dot", "svg"]

[cache]
backend = "none"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Width != 1200 || cfg.Layout.Iterations != 250 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Layout.Height != force.DefaultHeight {
		t.Errorf("height should keep its default, got %v", cfg.Layout.Height)
	}
	opts := cfg.Options()
	if opts.Seed != 7 || opts.Category != "Audio" || opts.Config.Width != 1200 {
		t.Errorf("Options() = %+v", opts)
	}
	if !slices.Equal(opts.Formats, []string{"dot", "svg"}) {
		t.Errorf("formats = %v", opts.Formats)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[layout\nwidth = 1"},
		{"unknown key", "[layout]\nwidht = 800.0"},
		{"bad margin", "[layout]\nwidth = 60.0\nmargin = 50.0"},
		{"bad format", "[render]\nformats = [\"gif\"]"},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad ttl", "[cache]\nttl = \"a week\""},
		{"bad timeout", "[server]\ntimeout = \"-5s\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig && code != errors.ErrCodeInvalidFormat {
				t.Errorf("code = %s (%v)", code, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Layout.LinkDistance = 200
	cfg.Render.Formats = []string{pipeline.FormatPNG}
	cfg.Catalog.MongoURI = "mongodb://localhost:27017"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Layout.LinkDistance != 200 || got.Catalog.MongoURI != cfg.Catalog.MongoURI {
		t.Errorf("round trip lost values: %+v", got)
	}
	if !slices.Equal(got.Render.Formats, []string{"png"}) {
		t.Errorf("formats = %v", got.Render.Formats)
	}
}

func TestPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Path(), filepath.Join(dir, "catgraph", "config.toml"); got != want {
		t.Errorf("Path() = %s, want %s", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRedisAddr, "redis:6379")
	t.Setenv(EnvMongoURI, "mongodb://mongo:27017")
	t.Setenv(EnvListen, ":9090")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Catalog.MongoURI != "mongodb://mongo:27017" || cfg.Server.Addr != ":9090" {
		t.Errorf("env not applied: %+v", cfg)
	}
}
