// Package kv is the server's storage abstraction. The admin API persists
// records and refresh tokens as keyed blobs, so a key-value interface is all
// it needs; backends can be swapped (Redis for deployments, memory for tests
// and local runs) without touching the services.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("kv: key not found")

// Store defines a minimal key-value interface. Keys are strings, values are
// byte slices. A TTL of 0 means the key does not expire.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns ErrNotFound if key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key. Returns nil if key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Keys returns the keys matching the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close closes the connection to the store.
	Close() error
}
