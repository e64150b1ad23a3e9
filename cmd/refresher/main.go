package main

import (
	"context"
	"log/slog"
	"os"

	"nomnom/config"
	"nomnom/internal/delivery"
	"nomnom/internal/delivery/worker"
	"nomnom/internal/delivery/worker/handler"
	"nomnom/internal/infra/busyness"
	"nomnom/internal/infra/cache"
	"nomnom/internal/infra/catalog"
	"nomnom/internal/infra/events"
	logs "nomnom/internal/infra/log"
	"nomnom/internal/infra/places"
	"nomnom/internal/infra/pubsub"
	"nomnom/internal/infra/weather"
	"nomnom/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewSource,
			catalog.Provide,
			cache.NewSnapshotCache,
		),
	)
}

// The refresher reloads snapshots through the same cached providers the API
// reads from, so both processes must share a redis cache.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(weather.NewOpenMeteoProvider, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(places.NewOverpassLocator, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(events.NewCuratedProvider, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(busyness.NewProvider, fx.ResultTags(`name:"raw"`)),
			cache.DecorateProviders,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRefreshService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
