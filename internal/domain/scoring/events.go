package scoring

import "nomnom/internal/domain/entity"

// EventBoost returns the largest boost among events whose impact radius
// covers point, plus every covering event in input order.
func EventBoost(point entity.Coordinate, events []entity.Event) (int, []entity.NearbyEvent) {
	boost := 0
	nearby := make([]entity.NearbyEvent, 0)

	for _, ev := range events {
		d := Distance(point, ev.Coordinate)
		if d > ev.ImpactRadius {
			continue
		}

		boost = max(boost, ev.TrafficBoost)
		nearby = append(nearby, entity.NearbyEvent{
			Name:     ev.Name,
			Distance: int(d),
			Boost:    ev.TrafficBoost,
		})
	}

	return boost, nearby
}
