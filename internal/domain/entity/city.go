package entity

import (
	"time"
	_ "time/tzdata" // city timezones must resolve in minimal containers
)

// City is a supported market with its map framing.
type City struct {
	ID          string      `json:"-"`
	Name        string      `json:"name"`
	Coords      Coordinate  `json:"coords"`
	BBox        BoundingBox `json:"bbox"`
	DefaultZoom int         `json:"default_zoom"`
	Timezone    string      `json:"timezone"`
}

// Location resolves the city's timezone, falling back to UTC when it is unknown.
func (c City) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
