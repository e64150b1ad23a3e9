// Package scoring holds the pure rules that turn points of interest and their
// surroundings into ranked business scores. Nothing here performs I/O.
package scoring

import (
	"math"

	"nomnom/internal/domain/entity"
)

// EarthRadiusMeters is the mean earth radius used for all distances.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b entity.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
