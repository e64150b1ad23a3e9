package impl

import (
	"context"
	"log/slog"
	"time"

	"nomnom/config"
	deliverycontext "nomnom/internal/delivery/context"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/scoring"
	"nomnom/internal/domain/service"
	"nomnom/internal/usecase"
)

const eventDateLayout = "2006-01-02"

type scoringService struct {
	catalog       repository.CatalogRepository
	weather       service.WeatherProvider
	competitors   service.CompetitorLocator
	events        service.EventProvider
	busyness      service.BusynessProvider
	densityRadius float64
	liveWorkers   int
	logger        *slog.Logger
	now           func() time.Time
}

// NewScoringService creates a new scoring service instance
func NewScoringService(
	catalog repository.CatalogRepository,
	weather service.WeatherProvider,
	competitors service.CompetitorLocator,
	events service.EventProvider,
	busyness service.BusynessProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScoringUsecase {
	return &scoringService{
		catalog:       catalog,
		weather:       weather,
		competitors:   competitors,
		events:        events,
		busyness:      busyness,
		densityRadius: cfg.Scoring.DensityRadiusMeters,
		liveWorkers:   cfg.Busyness.Workers,
		logger:        logger,
		now:           time.Now,
	}
}

// scoringInputs is the per-request snapshot handed to the core
type scoringInputs struct {
	city            entity.City
	points          []entity.PointOfInterest
	competitors     []entity.Competitor
	events          []entity.Event
	weatherSuitable bool
	options         scoring.Options
}

// ScoreHotspots ranks the city's hotspots by business score
func (s *scoringService) ScoreHotspots(ctx context.Context, filters *usecase.ScoringFilters) ([]entity.ScoredPoint, error) {
	in, err := s.gather(ctx, filters)
	if err != nil {
		return nil, err
	}

	return scoring.ScorePoints(in.points, in.competitors, in.events, in.weatherSuitable, in.options), nil
}

// ActivityZones aggregates the scored hotspots into the city's zones
func (s *scoringService) ActivityZones(ctx context.Context, filters *usecase.ScoringFilters) ([]entity.ZoneScore, error) {
	in, err := s.gather(ctx, filters)
	if err != nil {
		return nil, err
	}

	points := scoring.ScorePoints(in.points, in.competitors, in.events, in.weatherSuitable, in.options)

	return scoring.AggregateZones(points, s.catalog.ZoneDefinitions(in.city.ID)), nil
}

// gather collects provider snapshots, degrading each failed provider to its default
func (s *scoringService) gather(ctx context.Context, filters *usecase.ScoringFilters) (*scoringInputs, error) {
	city, err := resolveCity(s.catalog, filters.CityID)
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("city_id", city.ID))
	now := s.now().In(city.Location())
	points := s.catalog.PointsOfInterest(city.ID)

	in := &scoringInputs{
		city:            city,
		points:          points,
		weatherSuitable: s.weatherSuitable(ctx, city, logger),
		competitors:     s.competitorSnapshot(ctx, city, logger),
		events:          s.todaysEvents(ctx, city, now, logger),
		options: scoring.Options{
			MinTraffic:             filters.MinTraffic,
			RequireSuitableWeather: filters.RequireSuitableWeather,
			UseLiveData:            filters.UseLiveData,
			SimulatedHour:          filters.SimulatedHour,
			Now:                    now,
			DensityRadius:          s.densityRadius,
			Permits: func(name string) entity.PermitStatus {
				return s.catalog.PermitStatus(name, city.ID)
			},
		},
	}

	if filters.UseLiveData {
		in.options.Live = liveBusyness(ctx, s.busyness, points, city.Name, s.liveWorkers, logger)
	}

	return in, nil
}

func (s *scoringService) weatherSuitable(ctx context.Context, city entity.City, logger *slog.Logger) bool {
	weather, err := s.weather.CurrentWeather(ctx, city)
	if err != nil || weather == nil {
		logger.Warn("Weather unavailable, assuming suitable", slog.String("provider", "weather"), slog.Any("error", err))

		return true
	}

	return weather.IsSuitable
}

func (s *scoringService) competitorSnapshot(ctx context.Context, city entity.City, logger *slog.Logger) []entity.Competitor {
	competitors, err := s.competitors.Competitors(ctx, city)
	if err != nil {
		logger.Warn("Competitors unavailable, scoring without them", slog.String("provider", "competitors"), slog.Any("error", err))

		return nil
	}

	return competitors
}

func (s *scoringService) todaysEvents(ctx context.Context, city entity.City, now time.Time, logger *slog.Logger) []entity.Event {
	events, err := s.events.ActiveEvents(ctx, city.ID)
	if err != nil {
		logger.Warn("Events unavailable, scoring without boosts", slog.String("provider", "events"), slog.Any("error", err))

		return nil
	}

	today := now.Format(eventDateLayout)
	active := make([]entity.Event, 0, len(events))
	for _, e := range events {
		if e.Date == "" || e.Date == today {
			active = append(active, e)
		}
	}

	return active
}
