package scoring

import (
	"time"

	"nomnom/internal/domain/entity"
)

const weekendMultiplier = 1.3

type hourBand struct {
	from, to   int // [from, to)
	multiplier float64
}

type trafficProfile struct {
	bands    []hourBand
	fallback float64
}

func (p trafficProfile) multiplierAt(hour int) float64 {
	for _, band := range p.bands {
		if hour >= band.from && hour < band.to {
			return band.multiplier
		}
	}

	return p.fallback
}

var baseTraffic = map[entity.Category]int{
	entity.CategoryTourist:      75,
	entity.CategoryTransport:    80,
	entity.CategoryShopping:     70,
	entity.CategoryPark:         60,
	entity.CategoryNeighborhood: 50,
	entity.CategoryCultural:     55,
}

const defaultBaseTraffic = 50

var trafficProfiles = map[entity.Category]trafficProfile{
	entity.CategoryPark: {
		bands:    []hourBand{{6, 10, 0.6}, {10, 18, 1.1}, {18, 21, 0.5}},
		fallback: 0.1,
	},
	entity.CategoryShopping: {
		bands:    []hourBand{{9, 11, 0.7}, {11, 17, 1.0}, {17, 19, 0.8}},
		fallback: 0.2,
	},
	entity.CategoryTransport: {
		bands:    []hourBand{{7, 10, 1.2}, {10, 15, 0.8}, {15, 19, 1.2}, {19, 23, 0.6}},
		fallback: 0.3,
	},
	entity.CategoryTourist: {
		bands:    []hourBand{{9, 12, 0.8}, {12, 18, 1.1}, {18, 23, 0.9}},
		fallback: 0.2,
	},
	entity.CategoryNeighborhood: {
		bands:    []hourBand{{7, 10, 1.0}, {10, 16, 0.6}, {16, 20, 0.9}},
		fallback: 0.4,
	},
}

// cultural and unrecognized categories share this curve
var genericProfile = trafficProfile{
	bands:    []hourBand{{8, 18, 0.9}, {18, 22, 0.6}},
	fallback: 0.2,
}

func weekendBoosted(c entity.Category) bool {
	return c == entity.CategoryTourist || c == entity.CategoryPark || c == entity.CategoryShopping
}

// EstimateTraffic returns the 0-100 traffic estimate for a category at the
// given hour (0-23) and day of week (0 = Monday ... 6 = Sunday).
func EstimateTraffic(category entity.Category, hour, dayOfWeek int) int {
	base, ok := baseTraffic[category]
	if !ok {
		base = defaultBaseTraffic
	}

	profile, ok := trafficProfiles[category]
	if !ok {
		profile = genericProfile
	}

	multiplier := profile.multiplierAt(hour)
	if dayOfWeek >= 5 && weekendBoosted(category) {
		multiplier *= weekendMultiplier
	}

	return clampTraffic(int(float64(base) * multiplier))
}

// MondayWeekday converts t's weekday to 0 = Monday ... 6 = Sunday.
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ResolveClock returns the hour and day fed to EstimateTraffic. A simulated
// hour pins the day to Monday; otherwise the local clock of now is used.
func ResolveClock(now time.Time, simulatedHour *int) (hour, dayOfWeek int) {
	if simulatedHour != nil {
		return *simulatedHour, 0
	}

	return now.Hour(), MondayWeekday(now)
}

func clampTraffic(v int) int {
	return max(0, min(100, v))
}
