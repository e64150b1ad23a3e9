package repository

import (
	"context"
	"time"
)

// SnapshotCache stores serialized provider results. Get returns nil, nil on a miss.
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
