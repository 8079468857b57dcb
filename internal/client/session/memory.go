package session

import (
	"bytes"
	"context"
	"sync"

	"github.com/patrickmn/go-cache"
)

// MemoryStorage keeps entries in process memory. Entries never expire; the
// session lives until it is cleared.
type MemoryStorage struct {
	mu    sync.RWMutex
	items *cache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items.Get(key)
	if !ok {
		return nil, nil
	}
	b, _ := v.([]byte)
	return bytes.Clone(b), nil
}

func (m *MemoryStorage) Put(_ context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range entries {
		if v == nil {
			v = []byte{}
		}
		m.items.Set(k, bytes.Clone(v), cache.NoExpiration)
	}
	return nil
}

func (m *MemoryStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items.Flush()
	return nil
}

func (m *MemoryStorage) Close() error { return nil }
