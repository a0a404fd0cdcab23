// Package cache provides response caching for the pride web service client.
//
// Backends:
//   - FileCache: file-based storage for CLI usage (default)
//   - RedisCache: Redis-backed storage for shared/long-running deployments
//   - NullCache: no-op cache for tests or when caching is disabled
//
// All backends store opaque byte payloads under string keys with an optional
// TTL. Callers are responsible for serialization; the integrations client
// stores JSON-encoded API responses.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for response cache backends.
type Cache interface {
	// Get retrieves a value by key.
	// Returns (nil, false, nil) on a cache miss; expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A non-positive TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
