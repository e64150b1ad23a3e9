package cache

import (
	"context"
	"log/slog"
	"time"

	"nomnom/config"
	"nomnom/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

type redisSnapshotCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisClient connects to redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}

// NewRedisSnapshotCache stores snapshots in redis so the API and the refresher share them.
func NewRedisSnapshotCache(client *redis.Client, logger *slog.Logger) repository.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
		logger: logger.With(slog.String("component", "snapshot-cache")),
	}
}

func (r *redisSnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cache get %s", key)
	}

	r.logger.Debug("Cache hit", slog.String("key", key))

	return val, nil
}

func (r *redisSnapshotCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}

	r.logger.Debug("Cache set", slog.String("key", key), slog.Duration("ttl", ttl))

	return nil
}

func (r *redisSnapshotCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "cache delete")
	}

	return nil
}
