package impl

import (
	"context"
	"log/slog"
	"time"

	"nomnom/config"
	deliverycontext "nomnom/internal/delivery/context"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/service"
	"nomnom/internal/usecase"
)

// neutral crowd level when no reading could be fetched at all
const fallbackPopularity = 50

type providerService struct {
	catalog     repository.CatalogRepository
	weather     service.WeatherProvider
	competitors service.CompetitorLocator
	events      service.EventProvider
	busyness    service.BusynessProvider
	liveWorkers int
	logger      *slog.Logger
	now         func() time.Time
}

// NewProviderService creates a new provider service instance
func NewProviderService(
	catalog repository.CatalogRepository,
	weather service.WeatherProvider,
	competitors service.CompetitorLocator,
	events service.EventProvider,
	busyness service.BusynessProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	return &providerService{
		catalog:     catalog,
		weather:     weather,
		competitors: competitors,
		events:      events,
		busyness:    busyness,
		liveWorkers: cfg.Busyness.Workers,
		logger:      logger,
		now:         time.Now,
	}
}

// Weather returns the city's current conditions or an {error} payload
func (s *providerService) Weather(ctx context.Context, cityID string) (*entity.Weather, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	weather, err := s.weather.CurrentWeather(ctx, city)
	if err != nil {
		s.warn(ctx, "weather", city.ID, err)

		return &entity.Weather{Error: err.Error()}, nil
	}

	return weather, nil
}

// Competitors returns the competing venues or a single error marker entry
func (s *providerService) Competitors(ctx context.Context, cityID string) ([]entity.Competitor, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	competitors, err := s.competitors.Competitors(ctx, city)
	if err != nil {
		s.warn(ctx, "competitors", city.ID, err)

		return []entity.Competitor{entity.NewCompetitorError(err)}, nil
	}

	if competitors == nil {
		competitors = []entity.Competitor{}
	}

	return competitors, nil
}

// Events returns the curated event list for the city
func (s *providerService) Events(ctx context.Context, cityID string) ([]entity.Event, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ActiveEvents(ctx, city.ID)
	if err != nil {
		s.warn(ctx, "events", city.ID, err)

		return []entity.Event{}, nil
	}

	if events == nil {
		events = []entity.Event{}
	}

	return events, nil
}

// PopularTimes returns the live or estimated busyness for one place
func (s *providerService) PopularTimes(ctx context.Context, cityID, placeName string) (*entity.Busyness, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	reading, err := s.busyness.LiveBusyness(ctx, placeName, city.Name)
	if err != nil {
		s.warn(ctx, "busyness", city.ID, err)

		return &entity.Busyness{
			PlaceName:         placeName,
			CurrentPopularity: fallbackPopularity,
			Timestamp:         s.now().In(city.Location()),
			Error:             err.Error(),
		}, nil
	}

	return reading, nil
}

// HotspotsLive returns every catalog point with its busyness reading
func (s *providerService) HotspotsLive(ctx context.Context, cityID string) ([]usecase.LiveHotspot, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("city_id", city.ID))
	points := s.catalog.PointsOfInterest(city.ID)
	readings := liveBusyness(ctx, s.busyness, points, city.Name, s.liveWorkers, logger)

	hotspots := make([]usecase.LiveHotspot, 0, len(points))
	for _, p := range points {
		hotspot := usecase.LiveHotspot{PointOfInterest: p, TrafficLevel: fallbackPopularity}
		if reading, ok := readings[p.Name]; ok {
			hotspot.TrafficLevel = reading.CurrentPopularity
			hotspot.DataAvailable = reading.DataAvailable
		}

		hotspots = append(hotspots, hotspot)
	}

	return hotspots, nil
}

func (s *providerService) warn(ctx context.Context, provider, cityID string, err error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Provider unavailable",
		slog.String("provider", provider),
		slog.String("city_id", cityID),
		slog.Any("error", err),
	)
}
