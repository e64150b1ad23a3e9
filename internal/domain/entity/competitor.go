package entity

import "encoding/json"

// Competitor is a nearby competing venue. When the source fetch failed the
// entry carries only Error and must be ignored by distance calculations.
type Competitor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Coordinate
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// NewCompetitorError builds an error marker entry.
func NewCompetitorError(err error) Competitor {
	return Competitor{Error: err.Error()}
}

// IsValid reports whether the entry carries usable coordinates.
func (c Competitor) IsValid() bool {
	return c.Error == ""
}

// MarshalJSON renders error markers as {"error": "..."} only.
func (c Competitor) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return json.Marshal(map[string]string{"error": c.Error})
	}

	type plain Competitor

	return json.Marshal(plain(c))
}
