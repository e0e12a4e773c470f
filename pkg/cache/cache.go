// Package cache stores serialized audit results between runs.
//
// The CLI keeps entries on disk under the user's cache directory; the HTTP
// server can share a Redis instance between replicas. Both implement [Cache],
// and [NullCache] turns caching off.
//
// Keys are built by a [Keyer] so every component derives the same key for the
// same journal and input:
//
//	k := cache.NewDefaultKeyer()
//	key := k.CodeAuditKey(spec.Name, src) // "audit:code:<sha256>"
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// AuditTTL is how long an audit result stays valid.
const AuditTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any held connections.
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
