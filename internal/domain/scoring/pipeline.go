package scoring

import (
	"cmp"
	"slices"
	"time"

	"nomnom/internal/domain/entity"
)

// PermitResolver returns the permit annotation for a point name.
type PermitResolver func(pointName string) entity.PermitStatus

// Options tune a single scoring pass.
type Options struct {
	// MinTraffic drops points whose boosted traffic is below it (inclusive keep).
	MinTraffic int
	// RequireSuitableWeather drops every point when the weather is unsuitable.
	RequireSuitableWeather bool
	// UseLiveData prefers Live readings over the estimator.
	UseLiveData bool
	// SimulatedHour replaces the clock hour and pins the day to Monday.
	SimulatedHour *int
	// Now is the local wall clock of the city being scored.
	Now time.Time
	// Live is a read-only snapshot of busyness readings keyed by point name.
	Live map[string]entity.Busyness
	// Permits annotates each surviving point. Nil leaves permit fields empty.
	Permits PermitResolver
	// DensityRadius overrides DefaultDensityRadius when positive.
	DensityRadius float64
}

// ScorePoints scores every point against the given competitors, events and
// weather and returns the survivors ordered by business score, highest first.
// Ties keep input order. Inputs are never mutated.
func ScorePoints(
	points []entity.PointOfInterest,
	competitors []entity.Competitor,
	events []entity.Event,
	weatherSuitable bool,
	opts Options,
) []entity.ScoredPoint {
	if opts.RequireSuitableWeather && !weatherSuitable {
		return []entity.ScoredPoint{}
	}

	radius := opts.DensityRadius
	if radius <= 0 {
		radius = DefaultDensityRadius
	}

	hour, day := ResolveClock(opts.Now, opts.SimulatedHour)
	scored := make([]entity.ScoredPoint, 0, len(points))

	for _, p := range points {
		traffic, available := baseTrafficFor(p, hour, day, opts)

		boost, nearby := EventBoost(p.Coordinate, events)
		boosted := clampTraffic(traffic + boost)
		if boosted < opts.MinTraffic {
			continue
		}

		density := CompetitorDensity(p.Coordinate, competitors, radius)
		label := DensityLabelFor(density)
		score := BusinessScore(boosted, density, weatherSuitable)

		sp := entity.ScoredPoint{
			PointOfInterest:           p,
			TrafficLevel:              boosted,
			OriginalTraffic:           traffic,
			NearestCompetitorDistance: round1(NearestCompetitorDistance(p.Coordinate, competitors)),
			CompetitorDensity:         density,
			DensityLabel:              label.Label,
			DensityColor:              label.Color,
			WeatherSuitable:           weatherSuitable,
			DataAvailable:             available,
			BusinessScore:             score.Value,
			Recommendation:            score.Recommendation,
			Color:                     score.Color,
			Breakdown:                 score.Breakdown,
			NearbyEvents:              nearby,
			EventBoost:                boost,
		}

		if opts.Permits != nil {
			permit := opts.Permits(p.Name)
			sp.PermitStatus = permit.Status
			sp.PermitLabel = permit.Label
			sp.PermitColor = permit.Color
		}

		scored = append(scored, sp)
	}

	slices.SortStableFunc(scored, func(a, b entity.ScoredPoint) int {
		return cmp.Compare(b.BusinessScore, a.BusinessScore)
	})

	return scored
}

func baseTrafficFor(p entity.PointOfInterest, hour, day int, opts Options) (int, bool) {
	if opts.UseLiveData {
		if reading, ok := opts.Live[p.Name]; ok {
			return clampTraffic(reading.CurrentPopularity), reading.DataAvailable
		}
	}

	return EstimateTraffic(p.Category, hour, day), false
}
