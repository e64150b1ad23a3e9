package service

import (
	"context"

	"nomnom/internal/domain/entity"
)

// WeatherProvider reports current conditions for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city entity.City) (*entity.Weather, error)
}

// CompetitorLocator finds competing venues inside a city's bounding box.
type CompetitorLocator interface {
	Competitors(ctx context.Context, city entity.City) ([]entity.Competitor, error)
}

// BusynessProvider reports how busy a named place is right now.
type BusynessProvider interface {
	LiveBusyness(ctx context.Context, placeName, cityName string) (*entity.Busyness, error)
}

// EventProvider lists the events active today for a city.
type EventProvider interface {
	ActiveEvents(ctx context.Context, cityID string) ([]entity.Event, error)
}
