package impl

import (
	"context"
	"testing"
	"time"

	"nomnom/config"
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	mockRepo "nomnom/internal/mocks/repository"
	mockSvc "nomnom/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type providerMocks struct {
	catalog     *mockRepo.MockCatalogRepository
	weather     *mockSvc.MockWeatherProvider
	competitors *mockSvc.MockCompetitorLocator
	events      *mockSvc.MockEventProvider
	busyness    *mockSvc.MockBusynessProvider
}

func createTestProviderService(t *testing.T) (*providerService, providerMocks) {
	m := providerMocks{
		catalog:     mockRepo.NewMockCatalogRepository(t),
		weather:     mockSvc.NewMockWeatherProvider(t),
		competitors: mockSvc.NewMockCompetitorLocator(t),
		events:      mockSvc.NewMockEventProvider(t),
		busyness:    mockSvc.NewMockBusynessProvider(t),
	}

	cfg := &config.Config{Busyness: &config.BusynessConfig{Workers: 3}}

	svc, ok := NewProviderService(m.catalog, m.weather, m.competitors, m.events, m.busyness, cfg, testLogger()).(*providerService)
	require.True(t, ok)
	svc.now = func() time.Time { return mondayNoonUTC }

	return svc, m
}

func TestProviderService_Weather(t *testing.T) {
	t.Run("reading", func(t *testing.T) {
		svc, m := createTestProviderService(t)
		temp := 14.5

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.weather.EXPECT().CurrentWeather(mock.Anything, testCopenhagen).Return(&entity.Weather{Temperature: &temp, IsSuitable: true}, nil)

		weather, err := svc.Weather(context.Background(), "copenhagen")
		require.NoError(t, err)
		assert.True(t, weather.IsSuitable)
		assert.InDelta(t, 14.5, *weather.Temperature, 0.001)
	})

	t.Run("provider failure is reported in the payload", func(t *testing.T) {
		svc, m := createTestProviderService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.weather.EXPECT().CurrentWeather(mock.Anything, testCopenhagen).Return(nil, errors.New("open-meteo: status 502"))

		weather, err := svc.Weather(context.Background(), "copenhagen")
		require.NoError(t, err)
		assert.Equal(t, "open-meteo: status 502", weather.Error)
	})

	t.Run("unknown city", func(t *testing.T) {
		svc, m := createTestProviderService(t)

		m.catalog.EXPECT().City("oslo").Return(entity.City{}, false)

		_, err := svc.Weather(context.Background(), "oslo")
		assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))
	})
}

func TestProviderService_Competitors(t *testing.T) {
	tests := []struct {
		name     string
		found    []entity.Competitor
		err      error
		wantLen  int
		wantErr  string
		wantName string
	}{
		{
			name:     "found",
			found:    []entity.Competitor{{ID: 1, Name: "Café Norden", Type: "competitor"}},
			wantLen:  1,
			wantName: "Café Norden",
		},
		{
			name:    "nothing found",
			wantLen: 0,
		},
		{
			name:    "overpass failure",
			err:     errors.New("overpass: 429"),
			wantLen: 1,
			wantErr: "overpass: 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestProviderService(t)

			m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
			m.competitors.EXPECT().Competitors(mock.Anything, testCopenhagen).Return(tt.found, tt.err)

			competitors, err := svc.Competitors(context.Background(), "copenhagen")
			require.NoError(t, err)
			require.NotNil(t, competitors)
			require.Len(t, competitors, tt.wantLen)

			if tt.wantErr != "" {
				assert.False(t, competitors[0].IsValid())
				assert.Equal(t, tt.wantErr, competitors[0].Error)
			}
			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, competitors[0].Name)
			}
		})
	}
}

func TestProviderService_Events(t *testing.T) {
	svc, m := createTestProviderService(t)

	m.catalog.EXPECT().DefaultCityID().Return("copenhagen")
	m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
	m.events.EXPECT().ActiveEvents(mock.Anything, "copenhagen").Return(nil, errors.New("boom"))

	events, err := svc.Events(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestProviderService_PopularTimes(t *testing.T) {
	t.Run("reading", func(t *testing.T) {
		svc, m := createTestProviderService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.busyness.EXPECT().LiveBusyness(mock.Anything, "Nyhavn", "Copenhagen").
			Return(&entity.Busyness{PlaceName: "Nyhavn", CurrentPopularity: 72, DataAvailable: true}, nil)

		reading, err := svc.PopularTimes(context.Background(), "copenhagen", "Nyhavn")
		require.NoError(t, err)
		assert.Equal(t, 72, reading.CurrentPopularity)
		assert.True(t, reading.DataAvailable)
	})

	t.Run("provider failure falls back to neutral level", func(t *testing.T) {
		svc, m := createTestProviderService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.busyness.EXPECT().LiveBusyness(mock.Anything, "Nyhavn", "Copenhagen").Return(nil, context.DeadlineExceeded)

		reading, err := svc.PopularTimes(context.Background(), "copenhagen", "Nyhavn")
		require.NoError(t, err)
		assert.Equal(t, "Nyhavn", reading.PlaceName)
		assert.Equal(t, 50, reading.CurrentPopularity)
		assert.False(t, reading.DataAvailable)
		assert.Equal(t, context.DeadlineExceeded.Error(), reading.Error)
		assert.Equal(t, 12, reading.Timestamp.Hour())
	})
}

func TestProviderService_HotspotsLive(t *testing.T) {
	svc, m := createTestProviderService(t)

	m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
	m.catalog.EXPECT().PointsOfInterest("copenhagen").Return([]entity.PointOfInterest{kingsGarden, nyhavn, norreport})
	m.busyness.EXPECT().LiveBusyness(mock.Anything, "King's Garden", "Copenhagen").
		Return(&entity.Busyness{CurrentPopularity: 30, DataAvailable: false}, nil)
	m.busyness.EXPECT().LiveBusyness(mock.Anything, "Nyhavn", "Copenhagen").
		Return(&entity.Busyness{CurrentPopularity: 91, DataAvailable: true}, nil)
	m.busyness.EXPECT().LiveBusyness(mock.Anything, "Nørreport Station", "Copenhagen").
		Return(nil, errors.New("chrome crashed"))

	hotspots, err := svc.HotspotsLive(context.Background(), "copenhagen")
	require.NoError(t, err)
	require.Len(t, hotspots, 3)

	assert.Equal(t, "King's Garden", hotspots[0].Name)
	assert.Equal(t, 30, hotspots[0].TrafficLevel)
	assert.False(t, hotspots[0].DataAvailable)

	assert.Equal(t, 91, hotspots[1].TrafficLevel)
	assert.True(t, hotspots[1].DataAvailable)

	assert.Equal(t, 50, hotspots[2].TrafficLevel)
	assert.False(t, hotspots[2].DataAvailable)
}
