package usecase

import (
	"context"

	"nomnom/internal/domain/entity"
)

// ScoringFilters are the caller-tunable knobs of one scoring pass
type ScoringFilters struct {
	CityID     string
	MinTraffic int
	// MaxCompetitionDistance is accepted for client compatibility and not applied
	MaxCompetitionDistance int
	RequireSuitableWeather bool
	UseLiveData            bool
	// SimulatedHour pins the estimator clock to this hour on a weekday
	SimulatedHour *int
}

// ScoringUsecase ranks a city's hotspots and rolls them up into activity zones
type ScoringUsecase interface {
	ScoreHotspots(ctx context.Context, filters *ScoringFilters) ([]entity.ScoredPoint, error)
	ActivityZones(ctx context.Context, filters *ScoringFilters) ([]entity.ZoneScore, error)
}
