package cache

import (
	"context"
	"sync"
	"time"
)

// Store is the key-value cache the discovery pipeline reads and writes.
// Get returns the raw payload and whether a live entry existed.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu    sync.RWMutex
	store map[string]memoryEntry
}

// NewMemoryStore returns an in-process Store used when no Redis URL is
// configured, and in tests.
func NewMemoryStore() Store {
	return &memoryStore{store: make(map[string]memoryEntry)}
}

func (c *memoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[key]
	if !ok || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.payload, true
}

func (c *memoryStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = memoryEntry{payload: payload, expiresAt: time.Now().Add(ttl)}
}
