package scoring

import (
	"cmp"
	"slices"

	"nomnom/internal/domain/entity"
)

// AggregateZones averages scored points per zone by static membership. A
// point counts once per zone however often its name is listed.
// Zones without a scored member are omitted. The result is ordered by
// average business score, highest first.
func AggregateZones(points []entity.ScoredPoint, zones []entity.Zone) []entity.ZoneScore {
	result := make([]entity.ZoneScore, 0, len(zones))
	for _, z := range zones {
		members := make(map[string]struct{}, len(z.Members))
		for _, name := range z.Members {
			members[name] = struct{}{}
		}

		var traffic, score, distance float64
		count := 0

		for _, p := range points {
			if _, ok := members[p.Name]; !ok {
				continue
			}

			traffic += float64(p.TrafficLevel)
			score += p.BusinessScore
			distance += p.NearestCompetitorDistance
			count++
		}

		if count == 0 {
			continue
		}

		n := float64(count)
		// tier from the exact mean; 79.95 is still "good"
		recommendation, color := TierFor(score / n)

		result = append(result, entity.ZoneScore{
			Name:                   z.Name,
			CenterLat:              z.Center.Lat,
			CenterLon:              z.Center.Lon,
			Radius:                 z.Radius,
			AvgTraffic:             round1(traffic / n),
			AvgBusinessScore:       round1(score / n),
			AvgCompetitionDistance: round1(distance / n),
			HotspotCount:           count,
			Color:                  color,
			Recommendation:         recommendation,
		})
	}

	slices.SortStableFunc(result, func(a, b entity.ZoneScore) int {
		return cmp.Compare(b.AvgBusinessScore, a.AvgBusinessScore)
	})

	return result
}
