package providers

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CacheProvider.Get when the key is absent or
// expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider is a byte-valued key store with per-key expiry. It backs
// the HTTP response cache and the contact form limiter.
type CacheProvider interface {
	// Get returns the value for key or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Increment adds one to the counter at key, starting the ttl window when
	// the counter is created, and returns the new count.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// Exists checks if key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
