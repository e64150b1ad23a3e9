package scoring

const (
	minTemperatureC  = 5.0
	maxWindSpeedKmh  = 25.0
	maxPrecipitation = 0.5
)

// IsSuitableWeather reports whether conditions allow outdoor vending.
// Missing readings never make the weather unsuitable.
func IsSuitableWeather(temperature, windSpeed, precipitation *float64) bool {
	if temperature != nil && *temperature < minTemperatureC {
		return false
	}

	if windSpeed != nil && *windSpeed > maxWindSpeedKmh {
		return false
	}

	if precipitation != nil && *precipitation > maxPrecipitation {
		return false
	}

	return true
}
