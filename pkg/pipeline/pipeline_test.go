package pipeline

import (
	"context"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/catgraph/pkg/cache"
	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, DOT,,svg,json ")
	want := []string{"svg", "dot", "json"}
	if !slices.Equal(got, want) {
		t.Errorf("ParseFormats = %v, want %v", got, want)
	}
	if got := ParseFormats(""); len(got) != 0 {
		t.Errorf("ParseFormats(\"\") = %v", got)
	}
}

func TestWithDefaults(t *testing.T) {
	if got := WithDefaults(force.Config{}); got != force.DefaultConfig() {
		t.Errorf("WithDefaults(zero) = %+v", got)
	}

	cfg := force.DefaultConfig()
	cfg.Margin = 0
	cfg.Damping = 0
	cfg.CenterStrength = 0
	cfg.LinkSpan = 0
	cfg.Iterations = 0
	cfg.SnapshotEvery = 0
	if got := WithDefaults(cfg); got != cfg {
		t.Errorf("zero fields of a partial config replaced: %+v", got)
	}
}

func TestGenerateLayoutKeepsZeroTunables(t *testing.T) {
	cfg := force.DefaultConfig()
	cfg.Margin = 0
	cfg.LinkSpan = 0
	cfg.Damping = 0
	cfg.SnapshotEvery = 0

	l, err := GenerateLayout(context.Background(), catalog.Sample(), Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if l.Config != cfg {
		t.Errorf("Config = %+v, want %+v", l.Config, cfg)
	}
	if len(l.Edges) != 0 {
		t.Errorf("link span 0 produced %d edges", len(l.Edges))
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d", opts.Seed)
	}
	if !slices.Equal(opts.Formats, []string{FormatJSON}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v", opts.Scale)
	}

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad category", Options{Category: " Audio"}, errors.ErrCodeInvalidCategory},
		{"margin too wide", Options{Config: force.Config{Width: 80, Height: 600, Step: 1, Margin: 50}}, errors.ErrCodeInvalidConfig},
		{"negative iterations", Options{Config: force.Config{Width: 800, Height: 600, Step: 1, Iterations: -1}}, errors.ErrCodeInvalidConfig},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Detailed: true, Scale: 3}
	if k := opts.ArtifactKeyOpts(FormatJSON); k.Detailed || k.Scale != 0 {
		t.Errorf("json key should ignore render options: %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatSVG); !k.Detailed || k.Scale != 0 {
		t.Errorf("svg key = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPNG); k.Scale != 3 {
		t.Errorf("png key = %+v", k)
	}
}

func TestGenerateLayoutCategoryFilter(t *testing.T) {
	ctx := context.Background()

	l, err := GenerateLayout(ctx, catalog.Sample(), Options{Category: "Audio"})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if len(l.Nodes) != 3 || len(l.Edges) != 3 {
		t.Fatalf("Audio: %d nodes, %d edges", len(l.Nodes), len(l.Edges))
	}
	for _, n := range l.Nodes {
		if n.Category != "Audio" {
			t.Errorf("node %s has category %s", n.ID, n.Category)
		}
	}

	for _, all := range []string{"", "all", "Tutte"} {
		l, err := GenerateLayout(ctx, catalog.Sample(), Options{Category: all})
		if err != nil {
			t.Fatalf("GenerateLayout(%q): %v", all, err)
		}
		if len(l.Nodes) != 40 || len(l.Edges) != 53 {
			t.Errorf("%q: %d nodes, %d edges", all, len(l.Nodes), len(l.Edges))
		}
	}

	l, err = GenerateLayout(ctx, catalog.Sample(), Options{Category: "Giocattoli"})
	if err != nil {
		t.Fatalf("unknown category: %v", err)
	}
	if len(l.Nodes) != 0 || len(l.Edges) != 0 {
		t.Errorf("unknown category should give an empty layout, got %d nodes", len(l.Nodes))
	}
}

func TestGenerateLayoutDuplicateProducts(t *testing.T) {
	products := []catalog.Product{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}
	_, err := GenerateLayout(context.Background(), products, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestGenerateLayoutCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GenerateLayout(ctx, catalog.Sample(), Options{})
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if !errors.Is(err, errors.ErrCodeInternal) && !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("unexpected code %s", errors.GetCode(err))
	}
}

func newFileRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, nil)
}

func TestRunnerLayoutCache(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)
	products := catalog.Sample()

	first, hit, err := r.GenerateLayoutWithCacheInfo(ctx, products, Options{Category: "Elettronica"})
	if err != nil || hit {
		t.Fatalf("first run: hit %v, err %v", hit, err)
	}
	second, hit, err := r.GenerateLayoutWithCacheInfo(ctx, products, Options{Category: "Elettronica"})
	if err != nil || !hit {
		t.Fatalf("second run: hit %v, err %v", hit, err)
	}
	if len(first.Nodes) != len(second.Nodes) {
		t.Fatal("cached layout differs")
	}
	for i := range first.Nodes {
		if first.Nodes[i] != second.Nodes[i] {
			t.Errorf("node %d: %+v != %+v", i, first.Nodes[i], second.Nodes[i])
		}
	}

	if _, hit, _ := r.GenerateLayoutWithCacheInfo(ctx, products, Options{Category: "Elettronica", Seed: 7}); hit {
		t.Error("different seed should miss")
	}
	if _, hit, _ := r.GenerateLayoutWithCacheInfo(ctx, products, Options{Category: "Elettronica", Refresh: true}); hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerSnapshotsBypassCache(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)
	products := catalog.Sample()

	if _, err := r.GenerateLayout(ctx, products, Options{}); err != nil {
		t.Fatal(err)
	}

	var iterations []int
	opts := Options{Snapshot: func(i int, nodes []*force.Node) {
		iterations = append(iterations, i)
		if len(nodes) != 40 {
			t.Errorf("snapshot has %d nodes", len(nodes))
		}
	}}
	_, hit, err := r.GenerateLayoutWithCacheInfo(ctx, products, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("run with snapshots should not come from cache")
	}
	want := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	if !slices.Equal(iterations, want) {
		t.Errorf("snapshots at %v, want %v", iterations, want)
	}
}

func TestRunnerRenderCache(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)

	layout, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Audio"})
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Formats: []string{FormatJSON, FormatDOT}}

	artifacts, hit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil || hit {
		t.Fatalf("first render: hit %v, err %v", hit, err)
	}
	if len(artifacts[FormatJSON]) == 0 || len(artifacts[FormatDOT]) == 0 {
		t.Fatalf("missing artifacts: %v", len(artifacts))
	}
	again, hit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil || !hit {
		t.Fatalf("second render: hit %v, err %v", hit, err)
	}
	if string(again[FormatDOT]) != string(artifacts[FormatDOT]) {
		t.Error("cached DOT differs")
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), catalog.Sample(), Options{
		Category: "Rete",
		Formats:  []string{FormatJSON, FormatSVG},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Stats.ProductCount != 40 || res.Stats.NodeCount != 2 || res.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
	if len(res.CatalogHash) != 64 {
		t.Errorf("CatalogHash = %q", res.CatalogHash)
	}
	if len(res.Artifacts[FormatSVG]) == 0 {
		t.Error("missing svg")
	}
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets atomic.Int32
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits.Add(1) }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses.Add(1) }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets.Add(1) }

func TestRunnerFiresCacheHooks(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	r := newFileRunner(t)
	for range 2 {
		if _, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Storage"}); err != nil {
			t.Fatal(err)
		}
	}
	if hooks.misses.Load() != 1 || hooks.hits.Load() != 1 || hooks.sets.Load() != 1 {
		t.Errorf("misses %d, hits %d, sets %d", hooks.misses.Load(), hooks.hits.Load(), hooks.sets.Load())
	}
}

// ttlCache records the TTL of every write.
type ttlCache struct {
	cache.NullCache
	ttls []time.Duration
}

func (c *ttlCache) Set(_ context.Context, _ string, _ []byte, ttl time.Duration) error {
	c.ttls = append(c.ttls, ttl)
	return nil
}

func TestRunnerTTLOverride(t *testing.T) {
	ctx := context.Background()
	c := &ttlCache{}
	r := NewRunner(c, nil, nil)

	if _, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Rete"}); err != nil {
		t.Fatal(err)
	}
	r.TTL = time.Hour
	if _, err := r.GenerateLayout(ctx, catalog.Sample(), Options{Category: "Audio"}); err != nil {
		t.Fatal(err)
	}
	want := []time.Duration{cache.TTLLayout, time.Hour}
	if !slices.Equal(c.ttls, want) {
		t.Errorf("ttls = %v, want %v", c.ttls, want)
	}
}
