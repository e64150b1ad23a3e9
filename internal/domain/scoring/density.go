package scoring

import (
	"math"

	"nomnom/internal/domain/entity"
)

const (
	// DefaultDensityRadius is the radius in meters used to count competitors.
	DefaultDensityRadius = 400.0
	// DefaultCompetitorDistance is reported when no valid competitor exists.
	DefaultCompetitorDistance = 500.0
)

// DensityLabel is the qualitative band of a competitor count.
type DensityLabel struct {
	Label      string
	Color      string
	ScoreBoost int
}

var (
	densityHigh   = DensityLabel{Label: "High", Color: "#22c55e", ScoreBoost: 20}
	densityMedium = DensityLabel{Label: "Medium", Color: "#eab308", ScoreBoost: 10}
	densityLow    = DensityLabel{Label: "Low", Color: "#9ca3af", ScoreBoost: 0}
)

// DensityLabelFor classifies a competitor count: >=5 High, >=2 Medium, else Low.
func DensityLabelFor(count int) DensityLabel {
	switch {
	case count >= 5:
		return densityHigh
	case count >= 2:
		return densityMedium
	default:
		return densityLow
	}
}

// NearestCompetitorDistance returns the distance in meters to the closest
// valid competitor, or DefaultCompetitorDistance if there is none.
func NearestCompetitorDistance(point entity.Coordinate, competitors []entity.Competitor) float64 {
	nearest := math.Inf(1)
	for _, c := range competitors {
		if !c.IsValid() {
			continue
		}

		if d := Distance(point, c.Coordinate); d < nearest {
			nearest = d
		}
	}

	if math.IsInf(nearest, 1) {
		return DefaultCompetitorDistance
	}

	return nearest
}

// CompetitorDensity counts valid competitors within radius meters (inclusive).
func CompetitorDensity(point entity.Coordinate, competitors []entity.Competitor, radius float64) int {
	count := 0
	for _, c := range competitors {
		if !c.IsValid() {
			continue
		}

		if Distance(point, c.Coordinate) <= radius {
			count++
		}
	}

	return count
}
