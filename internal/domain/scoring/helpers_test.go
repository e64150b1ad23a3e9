package scoring

import (
	"math"

	"nomnom/internal/domain/entity"
)

var nyhavn = entity.Coordinate{Lat: 55.6798, Lon: 12.5912}

// north returns a coordinate roughly meters north of c.
func north(c entity.Coordinate, meters float64) entity.Coordinate {
	return entity.Coordinate{
		Lat: c.Lat + meters/(EarthRadiusMeters*math.Pi/180),
		Lon: c.Lon,
	}
}

func competitorsAround(c entity.Coordinate, n int, meters float64) []entity.Competitor {
	out := make([]entity.Competitor, 0, n)
	for i := range n {
		out = append(out, entity.Competitor{
			ID:         int64(i + 1),
			Name:       "Cafe",
			Coordinate: north(c, meters),
		})
	}

	return out
}
