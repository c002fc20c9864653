package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/travel-checklist/internal/model"
)

// ErrNotFound is returned by KV.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// KV is a durable key-value byte store. Values are opaque; callers own the
// encoding. Implementations are safe for use from a single goroutine at
// minimum; the bundled backends are safe for concurrent use.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the store.
	Close() error
}

// Open returns the backend named by cfg.Backend.
func Open(cfg model.StorageConfig) (KV, error) {
	switch cfg.Backend {
	case model.BackendSQLite, "":
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.BackendKeyring:
		s, err := NewKeyringStore(cfg.KeyringDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
