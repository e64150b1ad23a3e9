package handler

import (
	"nomnom/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func scoredPointsCollection(points []entity.ScoredPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range points {
		f := geojson.NewFeature(p.Point())
		f.Properties = geojson.Properties{
			"name":                  p.Name,
			"type":                  string(p.Category),
			"traffic_level":         p.TrafficLevel,
			"nearest_cafe_distance": p.NearestCompetitorDistance,
			"cafe_density":          p.CompetitorDensity,
			"density_label":         p.DensityLabel,
			"business_score":        p.BusinessScore,
			"recommendation":        string(p.Recommendation),
			"color":                 p.Color,
			"permit_status":         string(p.PermitStatus),
			"event_boost":           p.EventBoost,
			"data_available":        p.DataAvailable,
		}
		fc.Append(f)
	}

	return fc
}

func zoneCollection(zones []entity.ZoneScore) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, z := range zones {
		f := geojson.NewFeature(orb.Point{z.CenterLon, z.CenterLat})
		f.Properties = geojson.Properties{
			"name":                     z.Name,
			"radius":                   z.Radius,
			"avg_traffic":              z.AvgTraffic,
			"avg_business_score":       z.AvgBusinessScore,
			"avg_competition_distance": z.AvgCompetitionDistance,
			"hotspot_count":            z.HotspotCount,
			"color":                    z.Color,
			"recommendation":           string(z.Recommendation),
		}
		fc.Append(f)
	}

	return fc
}
