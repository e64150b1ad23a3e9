package entity

// Recommendation is the qualitative tier of a business score.
type Recommendation string

const (
	RecommendationExcellent Recommendation = "excellent"
	RecommendationGood      Recommendation = "good"
	RecommendationModerate  Recommendation = "moderate"
	RecommendationPoor      Recommendation = "poor"
)

// ScoreBreakdown holds each weighted contribution to a business score.
type ScoreBreakdown struct {
	TrafficContribution     float64 `json:"traffic_contribution"`
	CompetitionContribution float64 `json:"competition_contribution"`
	WeatherContribution     float64 `json:"weather_contribution"`
}

// ScoredPoint is the immutable result of scoring one point of interest.
type ScoredPoint struct {
	PointOfInterest

	TrafficLevel              int     `json:"traffic_level"`
	OriginalTraffic           int     `json:"original_traffic"`
	NearestCompetitorDistance float64 `json:"nearest_cafe_distance"`
	CompetitorDensity         int     `json:"cafe_density"`
	DensityLabel              string  `json:"density_label"`
	DensityColor              string  `json:"density_color"`
	WeatherSuitable           bool    `json:"weather_suitable"`
	DataAvailable             bool    `json:"data_available"`

	BusinessScore  float64        `json:"business_score"`
	Recommendation Recommendation `json:"recommendation"`
	Color          string         `json:"color"`
	Breakdown      ScoreBreakdown `json:"breakdown"`

	PermitStatus PermitTier `json:"permit_status"`
	PermitLabel  string     `json:"permit_label"`
	PermitColor  string     `json:"permit_color"`

	NearbyEvents []NearbyEvent `json:"nearby_events"`
	EventBoost   int           `json:"event_boost"`
}
