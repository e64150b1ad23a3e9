package entity

// Zone is a named area grouping points of interest by a static member list.
// Radius is display-only; membership never depends on it.
type Zone struct {
	Name    string     `json:"name"`
	Center  Coordinate `json:"center"`
	Radius  float64    `json:"radius"` // meters
	Members []string   `json:"hotspots"`
}

// ZoneScore is the aggregate of the scored members of a zone for one pass.
type ZoneScore struct {
	Name                   string         `json:"name"`
	CenterLat              float64        `json:"center_lat"`
	CenterLon              float64        `json:"center_lon"`
	Radius                 float64        `json:"radius"`
	AvgTraffic             float64        `json:"avg_traffic"`
	AvgBusinessScore       float64        `json:"avg_business_score"`
	AvgCompetitionDistance float64        `json:"avg_competition_distance"`
	HotspotCount           int            `json:"hotspot_count"`
	Color                  string         `json:"color"`
	Recommendation         Recommendation `json:"recommendation"`
}
