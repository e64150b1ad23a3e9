package entity

import "time"

// Busyness is an observed or estimated 0-100 crowd level for a named place.
type Busyness struct {
	PlaceName         string    `json:"place_name"`
	CurrentPopularity int       `json:"current_popularity"`
	DataAvailable     bool      `json:"data_available"`
	Timestamp         time.Time `json:"timestamp"`
	Note              string    `json:"note,omitempty"`
	Error             string    `json:"error,omitempty"`
}
