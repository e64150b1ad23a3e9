package scoring

import (
	"testing"

	"nomnom/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBoost(t *testing.T) {
	inside := entity.Event{Name: "Harbour Festival", Coordinate: north(nyhavn, 300), ImpactRadius: 500, TrafficBoost: 25}
	outside := entity.Event{Name: "Arena Concert", Coordinate: north(nyhavn, 600), ImpactRadius: 500, TrafficBoost: 40}
	bigger := entity.Event{Name: "Food Market", Coordinate: north(nyhavn, 50), ImpactRadius: 100, TrafficBoost: 35}

	t.Run("no events", func(t *testing.T) {
		boost, nearby := EventBoost(nyhavn, nil)
		assert.Zero(t, boost)
		assert.NotNil(t, nearby)
		assert.Empty(t, nearby)
	})

	t.Run("radius gates inclusion", func(t *testing.T) {
		boost, nearby := EventBoost(nyhavn, []entity.Event{inside, outside})
		assert.Equal(t, 25, boost)
		require.Len(t, nearby, 1)
		assert.Equal(t, "Harbour Festival", nearby[0].Name)
		assert.InDelta(t, 300, nearby[0].Distance, 1)
		assert.Equal(t, 25, nearby[0].Boost)
	})

	t.Run("boosts take the maximum and keep order", func(t *testing.T) {
		boost, nearby := EventBoost(nyhavn, []entity.Event{inside, bigger, inside})
		assert.Equal(t, 35, boost)
		require.Len(t, nearby, 3)
		assert.Equal(t, []string{"Harbour Festival", "Food Market", "Harbour Festival"},
			[]string{nearby[0].Name, nearby[1].Name, nearby[2].Name})
	})
}
