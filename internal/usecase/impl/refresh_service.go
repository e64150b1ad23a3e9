package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "nomnom/internal/delivery/context"
	"nomnom/internal/domain/constants"
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/service"
	"nomnom/internal/errors"
	"nomnom/internal/usecase"
)

var refreshSources = []string{
	service.RefreshSourceWeather,
	service.RefreshSourceCompetitors,
	service.RefreshSourceEvents,
}

type refreshService struct {
	catalog     repository.CatalogRepository
	cache       repository.SnapshotCache
	publisher   service.RefreshPublisher
	weather     service.WeatherProvider
	competitors service.CompetitorLocator
	events      service.EventProvider
	logger      *slog.Logger
	now         func() time.Time
}

// NewRefreshService creates a new refresh service instance. The providers are
// expected to be the cache-backed ones so that a reload re-warms the snapshot.
func NewRefreshService(
	catalog repository.CatalogRepository,
	cache repository.SnapshotCache,
	publisher service.RefreshPublisher,
	weather service.WeatherProvider,
	competitors service.CompetitorLocator,
	events service.EventProvider,
	logger *slog.Logger,
) usecase.RefreshUsecase {
	return &refreshService{
		catalog:     catalog,
		cache:       cache,
		publisher:   publisher,
		weather:     weather,
		competitors: competitors,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// RequestRefresh validates the request and publishes a refresh event
func (s *refreshService) RequestRefresh(ctx context.Context, cityID string, sources []string) (*service.RefreshEvent, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 {
		sources = slices.Clone(refreshSources)
	}

	for _, source := range sources {
		if !slices.Contains(refreshSources, source) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown refresh source %q", source))
		}
	}

	event := &service.RefreshEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		CityID:      city.ID,
		Sources:     sources,
		RequestedAt: s.now().UTC(),
	}

	if err := s.publisher.PublishRefreshEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to publish refresh event",
			slog.String("city_id", city.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrRefreshUnavailable.WrapMessage(err.Error())
	}

	return event, nil
}

// ApplyRefresh drops the named snapshots and reloads them through the providers
func (s *refreshService) ApplyRefresh(ctx context.Context, event *service.RefreshEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	city, err := resolveCity(s.catalog, event.CityID)
	if err != nil {
		// redelivery can never succeed, so the message is acknowledged
		logger.Warn("Dropping refresh for unknown city", slog.String("city_id", event.CityID))

		return nil
	}

	logger = logger.With(slog.String("city_id", city.ID))

	sources := event.Sources
	if len(sources) == 0 {
		sources = refreshSources
	}

	var failed []error
	for _, source := range sources {
		key, reload, ok := s.refresher(city, source)
		if !ok {
			logger.Warn("Skipping unknown refresh source", slog.String("source", source))

			continue
		}

		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Warn("Failed to drop snapshot", slog.String("key", key), slog.Any("error", err))
		}

		if err := reload(ctx); err != nil {
			logger.Warn("Failed to re-warm snapshot", slog.String("source", source), slog.Any("error", err))
			failed = append(failed, errors.Wrap(err, source))

			continue
		}

		logger.Info("Snapshot refreshed", slog.String("source", source))
	}

	if len(failed) > 0 {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, errors.Join(failed...).Error())
	}

	return nil
}

func (s *refreshService) refresher(city entity.City, source string) (string, func(context.Context) error, bool) {
	switch source {
	case service.RefreshSourceWeather:
		return fmt.Sprintf(constants.CacheKeyWeather, city.ID), func(ctx context.Context) error {
			_, err := s.weather.CurrentWeather(ctx, city)

			return err
		}, true
	case service.RefreshSourceCompetitors:
		return fmt.Sprintf(constants.CacheKeyCompetitors, city.ID), func(ctx context.Context) error {
			_, err := s.competitors.Competitors(ctx, city)

			return err
		}, true
	case service.RefreshSourceEvents:
		today := s.now().In(city.Location()).Format(time.DateOnly)

		return fmt.Sprintf(constants.CacheKeyEvents, city.ID, today), func(ctx context.Context) error {
			_, err := s.events.ActiveEvents(ctx, city.ID)

			return err
		}, true
	default:
		return "", nil, false
	}
}
