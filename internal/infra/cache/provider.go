package cache

import (
	"context"
	"log/slog"

	"nomnom/config"
	"nomnom/internal/domain/repository"

	"go.uber.org/fx"
)

// Params holds dependencies for the snapshot cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotCache returns the redis cache when enabled, the in-process cache otherwise.
func NewSnapshotCache(params Params) (repository.SnapshotCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, using in-process snapshot cache")

		return NewMemorySnapshotCache(), nil
	}

	client, err := NewRedisClient(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis connection")

			return client.Close()
		},
	})

	return NewRedisSnapshotCache(client, params.Logger), nil
}
