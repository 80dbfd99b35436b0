// Package cache provides a caching layer for generated pom documents.
//
// The cache is backed by one of several implementations: a file-based cache
// for single-machine use, a Redis-backed cache for shared deployments, and a
// null cache that disables caching entirely. Keys are derived from the
// generation inputs so a workspace change produces a new key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a deterministic cache key from a prefix and the inputs that
// define the cached value. The inputs are JSON-encoded and hashed, so any
// JSON-serializable value works.
func Key(prefix string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Fall back to the formatted value; keys only need determinism.
		data = []byte(fmt.Sprint(parts...))
	}
	return prefix + ":" + Hash(data)
}

// Hash returns the hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
