// Package cache provides byte-level caching for layouts and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for CLI use
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] derives cache keys from content hashes and options, so the same
// catalog with the same configuration and seed maps to the same key:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(cache.Hash(catalogJSON), cache.LayoutKeyOpts{Seed: 42})
//
// [ScopedKeyer] prefixes every key, e.g. to isolate tenants sharing one Redis.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/catgraph/pkg/force"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value and true on a hit, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default time-to-live per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
	TTLRun      = 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a settled layout of a catalog.
	LayoutKey(catalogHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string

	// RunKey identifies a stored, possibly edited, layout run.
	RunKey(runID string) string
}

// LayoutKeyOpts holds every input besides the catalog that shapes a layout.
type LayoutKeyOpts struct {
	Category string       `json:"category,omitempty"`
	Config   force.Config `json:"config"`
	Seed     uint64       `json:"seed"`
}

// ArtifactKeyOpts holds rendering options.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Detailed bool    `json:"detailed,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<hash>".
func (DefaultKeyer) LayoutKey(catalogHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", catalogHash, opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// RunKey returns "run:<id>".
func (DefaultKeyer) RunKey(runID string) string {
	return "run:" + runID
}
