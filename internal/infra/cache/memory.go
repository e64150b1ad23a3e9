package cache

import (
	"context"
	"time"

	"nomnom/internal/domain/repository"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

// memorySnapshotCache keeps snapshots in process; used when redis is disabled.
type memorySnapshotCache struct {
	store *gocache.Cache
}

// NewMemorySnapshotCache creates an in-process snapshot cache.
func NewMemorySnapshotCache() repository.SnapshotCache {
	return &memorySnapshotCache{
		store: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
	}
}

func (m *memorySnapshotCache) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := m.store.Get(key)
	if !ok {
		return nil, nil
	}

	data, _ := val.([]byte)

	// callers own the returned slice
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (m *memorySnapshotCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, stored, ttl)

	return nil
}

func (m *memorySnapshotCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.store.Delete(key)
	}

	return nil
}
