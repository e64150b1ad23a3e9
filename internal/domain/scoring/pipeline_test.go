package scoring

import (
	"testing"
	"time"

	"nomnom/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 12:00
var mondayNoon = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func park(name string, c entity.Coordinate) entity.PointOfInterest {
	return entity.PointOfInterest{Name: name, Coordinate: c, Category: entity.CategoryPark}
}

func TestScorePoints_SinglePark(t *testing.T) {
	points := []entity.PointOfInterest{park("Fælled Park", nyhavn)}

	t.Run("no competitors", func(t *testing.T) {
		got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon})

		require.Len(t, got, 1)
		assert.Equal(t, 66, got[0].TrafficLevel)
		assert.Equal(t, 66, got[0].OriginalTraffic)
		assert.Equal(t, 53.0, got[0].BusinessScore)
		assert.Equal(t, entity.RecommendationModerate, got[0].Recommendation)
		assert.Equal(t, "#f59e0b", got[0].Color)
		assert.Equal(t, DefaultCompetitorDistance, got[0].NearestCompetitorDistance)
		assert.Equal(t, "Low", got[0].DensityLabel)
		assert.False(t, got[0].DataAvailable)
	})

	t.Run("six nearby competitors", func(t *testing.T) {
		got := ScorePoints(points, competitorsAround(nyhavn, 6, 150), nil, true, Options{Now: mondayNoon})

		require.Len(t, got, 1)
		assert.Equal(t, 83.0, got[0].BusinessScore)
		assert.Equal(t, entity.RecommendationExcellent, got[0].Recommendation)
		assert.Equal(t, "#22c55e", got[0].Color)
		assert.Equal(t, 6, got[0].CompetitorDensity)
		assert.Equal(t, "High", got[0].DensityLabel)
		assert.InDelta(t, 150, got[0].NearestCompetitorDistance, 0.1)
	})
}

func TestScorePoints_EventBoost(t *testing.T) {
	points := []entity.PointOfInterest{park("Fælled Park", nyhavn)}
	events := []entity.Event{
		{Name: "Near", Coordinate: north(nyhavn, 300), ImpactRadius: 500, TrafficBoost: 20},
		{Name: "Far", Coordinate: north(nyhavn, 600), ImpactRadius: 500, TrafficBoost: 40},
	}

	got := ScorePoints(points, nil, events, true, Options{Now: mondayNoon})

	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].EventBoost)
	assert.Equal(t, 66, got[0].OriginalTraffic)
	assert.Equal(t, 86, got[0].TrafficLevel)
	require.Len(t, got[0].NearbyEvents, 1)
	assert.Equal(t, "Near", got[0].NearbyEvents[0].Name)
}

func TestScorePoints_BoostClampsAt100(t *testing.T) {
	points := []entity.PointOfInterest{{Name: "Station", Coordinate: nyhavn, Category: entity.CategoryTransport}}
	events := []entity.Event{{Name: "Concert", Coordinate: nyhavn, ImpactRadius: 100, TrafficBoost: 40}}
	hour := 8

	got := ScorePoints(points, nil, events, true, Options{SimulatedHour: &hour})

	require.Len(t, got, 1)
	assert.Equal(t, 96, got[0].OriginalTraffic)
	assert.Equal(t, 100, got[0].TrafficLevel)
}

func TestScorePoints_MinTrafficIsInclusive(t *testing.T) {
	points := []entity.PointOfInterest{park("Fælled Park", nyhavn)}

	got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon, MinTraffic: 66})
	assert.Len(t, got, 1)

	got = ScorePoints(points, nil, nil, true, Options{Now: mondayNoon, MinTraffic: 67})
	assert.Empty(t, got)
}

func TestScorePoints_MinTrafficAppliesAfterBoost(t *testing.T) {
	points := []entity.PointOfInterest{park("Fælled Park", nyhavn)}
	events := []entity.Event{{Name: "Yoga", Coordinate: nyhavn, ImpactRadius: 200, TrafficBoost: 10}}

	got := ScorePoints(points, nil, events, true, Options{Now: mondayNoon, MinTraffic: 76})
	assert.Len(t, got, 1)
}

func TestScorePoints_WeatherGate(t *testing.T) {
	points := []entity.PointOfInterest{park("Fælled Park", nyhavn)}

	got := ScorePoints(points, nil, nil, false, Options{Now: mondayNoon, RequireSuitableWeather: true})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ScorePoints(points, nil, nil, false, Options{Now: mondayNoon})
	require.Len(t, got, 1)
	assert.False(t, got[0].WeatherSuitable)
	assert.Equal(t, 33.0, got[0].BusinessScore)
}

func TestScorePoints_LiveData(t *testing.T) {
	points := []entity.PointOfInterest{
		park("Fælled Park", nyhavn),
		park("King's Garden", north(nyhavn, 2000)),
	}
	live := map[string]entity.Busyness{
		"Fælled Park": {PlaceName: "Fælled Park", CurrentPopularity: 90, DataAvailable: true},
	}

	t.Run("live readings replace the estimate", func(t *testing.T) {
		got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon, UseLiveData: true, Live: live})

		require.Len(t, got, 2)
		assert.Equal(t, "Fælled Park", got[0].Name)
		assert.Equal(t, 90, got[0].TrafficLevel)
		assert.True(t, got[0].DataAvailable)
		assert.Equal(t, 66, got[1].TrafficLevel)
		assert.False(t, got[1].DataAvailable)
	})

	t.Run("ignored unless requested", func(t *testing.T) {
		got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon, Live: live})

		require.Len(t, got, 2)
		assert.Equal(t, 66, got[0].TrafficLevel)
		assert.Equal(t, 66, got[1].TrafficLevel)
	})
}

func TestScorePoints_OrderingIsStable(t *testing.T) {
	points := []entity.PointOfInterest{
		park("A", nyhavn),
		{Name: "B", Coordinate: north(nyhavn, 3000), Category: entity.CategoryTransport},
		park("C", north(nyhavn, 6000)),
		park("D", north(nyhavn, 9000)),
	}

	got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon})

	require.Len(t, got, 4)
	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	assert.Equal(t, []string{"A", "C", "D", "B"}, names)
}

func TestScorePoints_PermitAnnotation(t *testing.T) {
	points := []entity.PointOfInterest{park("Nyhavn", nyhavn)}
	permits := func(name string) entity.PermitStatus {
		return entity.PermitStatus{Status: entity.PermitTierRed, Label: "Special Permit Required", Color: "#ef4444"}
	}

	got := ScorePoints(points, nil, nil, true, Options{Now: mondayNoon, Permits: permits})

	require.Len(t, got, 1)
	assert.Equal(t, entity.PermitTierRed, got[0].PermitStatus)
	assert.Equal(t, "Special Permit Required", got[0].PermitLabel)
	assert.Equal(t, "#ef4444", got[0].PermitColor)
}

func TestScorePoints_DoesNotMutateInputs(t *testing.T) {
	points := []entity.PointOfInterest{park("A", nyhavn), park("B", north(nyhavn, 500))}
	competitors := competitorsAround(nyhavn, 2, 100)
	snapshot := append([]entity.PointOfInterest(nil), points...)

	_ = ScorePoints(points, competitors, nil, true, Options{Now: mondayNoon})

	assert.Equal(t, snapshot, points)
}
