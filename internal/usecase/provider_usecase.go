package usecase

import (
	"context"

	"nomnom/internal/domain/entity"
)

// LiveHotspot is a point of interest with its live (or estimated) busyness
type LiveHotspot struct {
	entity.PointOfInterest
	TrafficLevel  int  `json:"traffic_level"`
	DataAvailable bool `json:"data_available"`
}

// ProviderUsecase exposes the external collaborators directly. Provider
// failures are reported inside the payload, never as errors.
type ProviderUsecase interface {
	Weather(ctx context.Context, cityID string) (*entity.Weather, error)
	Competitors(ctx context.Context, cityID string) ([]entity.Competitor, error)
	Events(ctx context.Context, cityID string) ([]entity.Event, error)
	PopularTimes(ctx context.Context, cityID, placeName string) (*entity.Busyness, error)
	HotspotsLive(ctx context.Context, cityID string) ([]LiveHotspot, error)
}
