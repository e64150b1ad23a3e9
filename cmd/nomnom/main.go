package main

import (
	"context"
	"log/slog"
	"os"

	"nomnom/config"
	"nomnom/internal/delivery"
	"nomnom/internal/delivery/api"
	"nomnom/internal/delivery/api/router/handler"
	"nomnom/internal/domain/service"
	"nomnom/internal/infra/busyness"
	"nomnom/internal/infra/cache"
	"nomnom/internal/infra/catalog"
	"nomnom/internal/infra/events"
	logs "nomnom/internal/infra/log"
	"nomnom/internal/infra/places"
	"nomnom/internal/infra/pubsub"
	"nomnom/internal/infra/qrcode"
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
		injectDelivery(),
		injectHandler(),
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

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(weather.NewOpenMeteoProvider, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(places.NewOverpassLocator, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(events.NewCuratedProvider, fx.ResultTags(`name:"raw"`)),
			fx.Annotate(busyness.NewProvider, fx.ResultTags(`name:"raw"`)),
			cache.DecorateProviders,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewScoringService,
			impl.NewProviderService,
			impl.NewRefreshService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewProviderHandler,
			handler.NewScoringHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
