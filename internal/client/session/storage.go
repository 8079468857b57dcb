package session

import (
	"context"
	"fmt"
)

// Storage holds session entries for the lifetime of one client process.
type Storage interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes all entries or none.
	Put(ctx context.Context, entries map[string][]byte) error
	Clear(ctx context.Context) error
	Close() error
}

// Storage backends accepted by OpenStorage.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// OpenStorage builds the backend named by backend. dsn is only used by
// the sqlite backend.
func OpenStorage(ctx context.Context, backend, dsn string) (Storage, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemoryStorage(), nil
	case BackendSQLite:
		return OpenSQLiteStorage(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
