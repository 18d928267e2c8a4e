package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several applications or environments share one
// cache backend, such as a common Redis instance.
//
// Example usage:
//
//	// Per-environment keys on a shared Redis
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
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

// EngineKey generates a prefixed key for layout-engine output.
func (k *ScopedKeyer) EngineKey(docHash string) string {
	return k.prefix + k.inner.EngineKey(docHash)
}

// RenderKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) RenderKey(docHash, format string) string {
	return k.prefix + k.inner.RenderKey(docHash, format)
}
