// Package cache provides pluggable storage for computed navigation
// artifacts: extracted graphs, batch distance records, and individual
// journey paths.
//
// Everything the engine computes is a pure function of the model and
// the start-page mapping, so results are cached under content-hash keys
// and never invalidated explicitly - a changed model or mapping simply
// hashes to a different key.
//
// Four backends implement the [Cache] interface: [FileCache] for CLI
// usage, [RedisCache] and [MongoCache] for the serve mode, and
// [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache entry lifetimes per artifact kind. Graphs follow the model file
// and can live long; distance records depend on the start-page mapping
// too, which changes more often.
const (
	// TTLGraph is the lifetime of a cached extracted graph.
	TTLGraph = 24 * time.Hour

	// TTLDistances is the lifetime of cached batch distance records.
	TTLDistances = 6 * time.Hour

	// TTLPath is the lifetime of a cached single-journey path.
	TTLPath = 6 * time.Hour
)

// Cache stores opaque byte payloads under string keys with optional
// expiration. Implementations must treat an expired or missing entry as
// a miss, never an error.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// DistanceKeyOpts carries the inputs that shape batch distance output
// beyond the graph itself.
type DistanceKeyOpts struct {
	StartsHash string // content hash of the start-page mapping
}

// Keyer generates cache keys for the artifact kinds the engine
// produces. Keys embed content hashes so distinct inputs can never
// collide.
type Keyer interface {
	// GraphKey identifies an extracted graph by its model content hash.
	GraphKey(modelHash string) string

	// DistanceKey identifies batch distance records for one graph and
	// one start-page mapping.
	DistanceKey(graphHash string, opts DistanceKeyOpts) string

	// PathKey identifies a single shortest-path query result.
	PathKey(graphHash, from, to string) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for an extracted graph.
func (k *DefaultKeyer) GraphKey(modelHash string) string {
	return hashKey("graph", modelHash)
}

// DistanceKey generates a key for batch distance records.
func (k *DefaultKeyer) DistanceKey(graphHash string, opts DistanceKeyOpts) string {
	return hashKey("distances", graphHash, opts)
}

// PathKey generates a key for a shortest-path query result.
func (k *DefaultKeyer) PathKey(graphHash, from, to string) string {
	return hashKey("path", graphHash, from, to)
}
