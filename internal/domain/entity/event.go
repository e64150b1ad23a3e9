package entity

// Event is a scheduled happening that temporarily raises foot traffic around it.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Coordinate
	Type         string  `json:"type"`
	ImpactRadius float64 `json:"impact_radius"` // meters
	TrafficBoost int     `json:"traffic_boost"` // traffic points, 0-100
	Date         string  `json:"date"`          // YYYY-MM-DD
	Time         string  `json:"time"`          // HH:MM local
	URL          string  `json:"url"`
}

// NearbyEvent is an event whose impact radius covers a scored point.
type NearbyEvent struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
	Boost    int    `json:"boost"`
}
