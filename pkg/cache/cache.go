// Package cache provides pluggable byte caches for engine output and
// rendered artifacts.
//
// Layout engine output is deterministic for a given input document, so
// round trips can be skipped entirely when a cached copy exists. The
// [Cache] interface has file, Redis, and null implementations; [Keyer]
// builds the cache keys and can be wrapped with [NewScopedKeyer] when
// several deployments share one backend.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a single key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases any backend resources.
	Close() error
}

// Keyer builds cache keys for the cacheable stages.
type Keyer interface {
	// EngineKey returns the key for raw layout-engine output, given the
	// hash of the input document.
	EngineKey(docHash string) string

	// RenderKey returns the key for a rendered artifact in the given
	// format.
	RenderKey(docHash, format string) string
}

// DefaultKeyer builds plain, readable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// EngineKey returns "engine:<hash>".
func (k *DefaultKeyer) EngineKey(docHash string) string {
	return "engine:" + docHash
}

// RenderKey returns "render:<hash>:<format>".
func (k *DefaultKeyer) RenderKey(docHash, format string) string {
	return "render:" + docHash + ":" + format
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
