package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This matters when several workspaces share one Redis or MongoDB
// backend: each workspace gets its own key namespace.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "workspace:orders:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for an extracted graph.
func (k *ScopedKeyer) GraphKey(modelHash string) string {
	return k.prefix + k.inner.GraphKey(modelHash)
}

// DistanceKey generates a prefixed key for batch distance records.
func (k *ScopedKeyer) DistanceKey(graphHash string, opts DistanceKeyOpts) string {
	return k.prefix + k.inner.DistanceKey(graphHash, opts)
}

// PathKey generates a prefixed key for a shortest-path query result.
func (k *ScopedKeyer) PathKey(graphHash, from, to string) string {
	return k.prefix + k.inner.PathKey(graphHash, from, to)
}
