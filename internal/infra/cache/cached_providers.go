package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nomnom/config"
	"nomnom/internal/domain/constants"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/service"

	"go.uber.org/fx"
)

// WeatherKey is the snapshot key for a city's weather.
func WeatherKey(cityID string) string {
	return fmt.Sprintf(constants.CacheKeyWeather, cityID)
}

// CompetitorsKey is the snapshot key for a city's competitor list.
func CompetitorsKey(cityID string) string {
	return fmt.Sprintf(constants.CacheKeyCompetitors, cityID)
}

// EventsKey is the snapshot key for a city's events listed on date (YYYY-MM-DD, city-local).
func EventsKey(cityID, date string) string {
	return fmt.Sprintf(constants.CacheKeyEvents, cityID, date)
}

// BusynessKey is the snapshot key for one place.
func BusynessKey(cityName, placeName string) string {
	return fmt.Sprintf(constants.CacheKeyBusyness, strings.ToLower(cityName+":"+placeName))
}

// loadThrough serves key from cache, falling back to load and storing its result.
// Cache failures degrade to a direct load; load errors are never cached.
func loadThrough[T any](
	ctx context.Context,
	cache repository.SnapshotCache,
	logger *slog.Logger,
	key string,
	ttl time.Duration,
	load func(context.Context) (T, error),
) (T, error) {
	data, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Snapshot cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if data != nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		logger.Warn("Discarding undecodable snapshot", slog.String("key", key))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Snapshot encode failed", slog.String("key", key), slog.Any("error", err))

		return value, nil
	}

	if err := cache.Set(ctx, key, encoded, ttl); err != nil {
		logger.Warn("Snapshot cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

type cachedWeather struct {
	next   service.WeatherProvider
	cache  repository.SnapshotCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedWeatherProvider decorates next with snapshot caching.
func NewCachedWeatherProvider(next service.WeatherProvider, cache repository.SnapshotCache, ttl time.Duration, logger *slog.Logger) service.WeatherProvider {
	return &cachedWeather{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *cachedWeather) CurrentWeather(ctx context.Context, city entity.City) (*entity.Weather, error) {
	return loadThrough(ctx, c.cache, c.logger, WeatherKey(city.ID), c.ttl, func(ctx context.Context) (*entity.Weather, error) {
		return c.next.CurrentWeather(ctx, city)
	})
}

type cachedCompetitors struct {
	next   service.CompetitorLocator
	cache  repository.SnapshotCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedCompetitorLocator decorates next with snapshot caching.
func NewCachedCompetitorLocator(next service.CompetitorLocator, cache repository.SnapshotCache, ttl time.Duration, logger *slog.Logger) service.CompetitorLocator {
	return &cachedCompetitors{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *cachedCompetitors) Competitors(ctx context.Context, city entity.City) ([]entity.Competitor, error) {
	return loadThrough(ctx, c.cache, c.logger, CompetitorsKey(city.ID), c.ttl, func(ctx context.Context) ([]entity.Competitor, error) {
		return c.next.Competitors(ctx, city)
	})
}

type cachedEvents struct {
	next    service.EventProvider
	cache   repository.SnapshotCache
	catalog repository.CatalogRepository
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewCachedEventProvider decorates next with snapshot caching. Event lists are
// dated, so snapshots are keyed by the city-local day and never outlive it.
func NewCachedEventProvider(
	next service.EventProvider,
	cache repository.SnapshotCache,
	catalog repository.CatalogRepository,
	ttl time.Duration,
	logger *slog.Logger,
) service.EventProvider {
	return &cachedEvents{next: next, cache: cache, catalog: catalog, ttl: ttl, now: time.Now, logger: logger}
}

func (c *cachedEvents) ActiveEvents(ctx context.Context, cityID string) ([]entity.Event, error) {
	loc := time.UTC
	if city, ok := c.catalog.City(cityID); ok {
		loc = city.Location()
	}

	now := c.now().In(loc)
	ttl := min(c.ttl, untilMidnight(now))

	return loadThrough(ctx, c.cache, c.logger, EventsKey(cityID, now.Format(time.DateOnly)), ttl, func(ctx context.Context) ([]entity.Event, error) {
		return c.next.ActiveEvents(ctx, cityID)
	})
}

// untilMidnight is the time left in now's calendar day, in now's location.
func untilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}

type cachedBusyness struct {
	next   service.BusynessProvider
	cache  repository.SnapshotCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedBusynessProvider decorates next with snapshot caching.
func NewCachedBusynessProvider(next service.BusynessProvider, cache repository.SnapshotCache, ttl time.Duration, logger *slog.Logger) service.BusynessProvider {
	return &cachedBusyness{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *cachedBusyness) LiveBusyness(ctx context.Context, placeName, cityName string) (*entity.Busyness, error) {
	return loadThrough(ctx, c.cache, c.logger, BusynessKey(cityName, placeName), c.ttl, func(ctx context.Context) (*entity.Busyness, error) {
		return c.next.LiveBusyness(ctx, placeName, cityName)
	})
}

// DecorateParams holds the uncached providers, tagged `name:"raw"`.
type DecorateParams struct {
	fx.In

	Config      *config.Config
	Cache       repository.SnapshotCache
	Catalog     repository.CatalogRepository
	Logger      *slog.Logger
	Weather     service.WeatherProvider   `name:"raw"`
	Competitors service.CompetitorLocator `name:"raw"`
	Events      service.EventProvider     `name:"raw"`
	Busyness    service.BusynessProvider  `name:"raw"`
}

// CachedProviders are the providers the rest of the graph consumes.
type CachedProviders struct {
	fx.Out

	Weather     service.WeatherProvider
	Competitors service.CompetitorLocator
	Events      service.EventProvider
	Busyness    service.BusynessProvider
}

// DecorateProviders wraps every raw provider with its snapshot cache.
func DecorateProviders(params DecorateParams) CachedProviders {
	cfg := params.Config.Cache
	logger := params.Logger.With(slog.String("component", "snapshot-cache"))

	return CachedProviders{
		Weather:     NewCachedWeatherProvider(params.Weather, params.Cache, cfg.WeatherTTL, logger),
		Competitors: NewCachedCompetitorLocator(params.Competitors, params.Cache, cfg.CompetitorTTL, logger),
		Events:      NewCachedEventProvider(params.Events, params.Cache, params.Catalog, cfg.EventTTL, logger),
		Busyness:    NewCachedBusynessProvider(params.Busyness, params.Cache, cfg.BusynessTTL, logger),
	}
}
