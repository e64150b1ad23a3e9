package busyness

import "time"

const defaultBaseBusyness = 50

// known crowd levels for landmark places, keyed by exact catalog name
var baseBusyness = map[string]int{
	"Nyhavn":            85,
	"Strøget":           80,
	"Nørreport Station": 75,
	"Tivoli Gardens":    80,
	"Kongens Nytorv":    70,
	"Christiansborg":    65,
	"The Round Tower":   60,
}

func hourMultiplier(hour int) float64 {
	switch {
	case hour < 7 || hour > 22:
		return 0.2
	case hour < 10:
		return 0.5
	case hour < 14:
		return 0.9
	case hour < 18:
		return 1.0
	case hour < 22:
		return 0.8
	default: // 22:00-22:59
		return 0.3
	}
}

// EstimateBusyness returns a deterministic 0-100 crowd guess for placeName at
// the local time now. Used whenever no observed value is available.
func EstimateBusyness(placeName string, now time.Time) int {
	base, ok := baseBusyness[placeName]
	if !ok {
		base = defaultBaseBusyness
	}

	multiplier := hourMultiplier(now.Hour())
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		multiplier *= 1.2
	}

	return min(100, int(float64(base)*multiplier))
}
