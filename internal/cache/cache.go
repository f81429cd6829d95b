// Package cache memoizes rendered advisory results. Calculator and advisory
// output is pure given its inputs, so identical requests can be answered
// from cache without re-running the engine.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface for result memoization. Implementations must be
// safe for concurrent use. A cache miss is never an error; callers fall
// through to the engine.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key for at most ttl. A zero ttl stores the
	// value without expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a cache key from a namespace prefix and the serialized request
// body. Identical bodies always produce identical keys.
func Key(prefix string, body []byte) string {
	sum := sha256.Sum256(body)
	return prefix + ":" + hex.EncodeToString(sum[:])
}
