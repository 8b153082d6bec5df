package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends after Close.
var ErrClosed = errors.New("store: closed")

// Store is a string key/value store. Each call is atomic for its key; there
// are no cross-key transactions.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the backend's connections.
	Close() error
}
