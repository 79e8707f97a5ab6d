package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Useful when one Redis instance serves several deployments that must not
// share cached results.
//
// Example usage:
//
//	// Per-workspace keys
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
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

// ClassificationKey generates a prefixed key for prompt analysis caching.
func (k *ScopedKeyer) ClassificationKey(prompt string) string {
	return k.prefix + k.inner.ClassificationKey(prompt)
}

// ResultKey generates a prefixed key for generation result caching.
func (k *ScopedKeyer) ResultKey(prompt string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(prompt, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(resultHash, opts)
}
