package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nomnom/internal/domain/entity"
	mockRepo "nomnom/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, now time.Time) *CuratedProvider {
	t.Helper()

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().City("copenhagen").Return(entity.City{ID: "copenhagen", Timezone: "Europe/Copenhagen"}, true).Maybe()
	catalog.EXPECT().City("ghent").Return(entity.City{ID: "ghent", Timezone: "Europe/Brussels"}, true).Maybe()

	return &CuratedProvider{
		catalog: catalog,
		now:     func() time.Time { return now },
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func ids(events []entity.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}

	return out
}

func TestCuratedProvider_Weekday(t *testing.T) {
	// Monday morning in Copenhagen
	provider := newTestProvider(t, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))

	events, err := provider.ActiveEvents(context.Background(), "copenhagen")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"evt_001", "evt_002", "evt_small_01", "evt_small_02", "evt_small_03",
		"evt_small_04", "evt_small_07", "evt_small_08", "evt_003",
	}, ids(events))

	for _, e := range events {
		if e.ID == "evt_003" {
			assert.Equal(t, "2026-10-20", e.Date)
			continue
		}
		assert.Equal(t, "2026-10-19", e.Date)
	}
}

func TestCuratedProvider_Weekend(t *testing.T) {
	// Saturday
	provider := newTestProvider(t, time.Date(2026, 10, 24, 12, 0, 0, 0, time.UTC))

	events, err := provider.ActiveEvents(context.Background(), "copenhagen")
	require.NoError(t, err)

	got := ids(events)
	assert.Contains(t, got, "evt_small_05")
	assert.Contains(t, got, "evt_small_06")
	assert.NotContains(t, got, "evt_small_03")
	assert.NotContains(t, got, "evt_small_04")
}

func TestCuratedProvider_LocalDate(t *testing.T) {
	// 23:30 UTC Sunday is already Monday 00:30 in Copenhagen
	provider := newTestProvider(t, time.Date(2026, 10, 25, 23, 30, 0, 0, time.UTC))

	events, err := provider.ActiveEvents(context.Background(), "copenhagen")
	require.NoError(t, err)
	require.NotEmpty(t, events)

	assert.Equal(t, "2026-10-26", events[0].Date)
	assert.Contains(t, ids(events), "evt_small_03")
}

func TestCuratedProvider_CityWithoutListings(t *testing.T) {
	provider := newTestProvider(t, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))

	events, err := provider.ActiveEvents(context.Background(), "ghent")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestCuratedProvider_DoesNotShareListings(t *testing.T) {
	provider := newTestProvider(t, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))

	first, err := provider.ActiveEvents(context.Background(), "copenhagen")
	require.NoError(t, err)
	first[0].TrafficBoost = 99

	second, err := provider.ActiveEvents(context.Background(), "copenhagen")
	require.NoError(t, err)
	assert.Equal(t, 30, second[0].TrafficBoost)
}
