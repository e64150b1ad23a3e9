package scoring

import "nomnom/internal/domain/entity"

const (
	trafficWeight     = 0.5
	competitionWeight = 1.5
	weatherPoints     = 20.0
)

type tier struct {
	threshold      float64
	recommendation entity.Recommendation
	color          string
}

var tiers = []tier{
	{80, entity.RecommendationExcellent, "#22c55e"},
	{60, entity.RecommendationGood, "#eab308"},
	{40, entity.RecommendationModerate, "#f59e0b"},
}

var poorTier = tier{0, entity.RecommendationPoor, "#ef4444"}

// Score is the outcome of BusinessScore.
type Score struct {
	Value          float64
	Recommendation entity.Recommendation
	Color          string
	Breakdown      entity.ScoreBreakdown
}

// BusinessScore combines traffic, competitor density and weather into a
// 0-100 score. Denser competition is treated as proof of demand.
func BusinessScore(trafficLevel, densityCount int, weatherSuitable bool) Score {
	label := DensityLabelFor(densityCount)

	trafficPart := float64(trafficLevel) * trafficWeight
	competitionPart := float64(label.ScoreBoost) * competitionWeight
	weatherPart := 0.0
	if weatherSuitable {
		weatherPart = weatherPoints
	}

	value := round1(min(100, max(0, trafficPart+competitionPart+weatherPart)))
	recommendation, color := TierFor(value)

	return Score{
		Value:          value,
		Recommendation: recommendation,
		Color:          color,
		Breakdown: entity.ScoreBreakdown{
			TrafficContribution:     round1(trafficPart),
			CompetitionContribution: round1(competitionPart),
			WeatherContribution:     round1(weatherPart),
		},
	}
}

// TierFor maps a score to its recommendation and display color.
func TierFor(score float64) (entity.Recommendation, string) {
	for _, t := range tiers {
		if score >= t.threshold {
			return t.recommendation, t.color
		}
	}

	return poorTier.recommendation, poorTier.color
}
