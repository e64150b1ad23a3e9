package entity

// Weather is the current conditions snapshot for a city.
type Weather struct {
	Temperature   *float64 `json:"temperature"`    // °C
	WindSpeed     *float64 `json:"wind_speed"`     // km/h
	Precipitation *float64 `json:"precipitation"`  // mm
	Timestamp     string   `json:"timestamp"`      // provider local time
	IsSuitable    bool     `json:"is_suitable"`
	Error         string   `json:"error,omitempty"`
}
