package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "nomnom/internal/delivery/context"
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/service"
	mockRepo "nomnom/internal/mocks/repository"
	mockSvc "nomnom/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refreshMocks struct {
	catalog     *mockRepo.MockCatalogRepository
	cache       *mockRepo.MockSnapshotCache
	publisher   *mockSvc.MockRefreshPublisher
	weather     *mockSvc.MockWeatherProvider
	competitors *mockSvc.MockCompetitorLocator
	events      *mockSvc.MockEventProvider
}

func createTestRefreshService(t *testing.T) (*refreshService, refreshMocks) {
	m := refreshMocks{
		catalog:     mockRepo.NewMockCatalogRepository(t),
		cache:       mockRepo.NewMockSnapshotCache(t),
		publisher:   mockSvc.NewMockRefreshPublisher(t),
		weather:     mockSvc.NewMockWeatherProvider(t),
		competitors: mockSvc.NewMockCompetitorLocator(t),
		events:      mockSvc.NewMockEventProvider(t),
	}

	svc, ok := NewRefreshService(m.catalog, m.cache, m.publisher, m.weather, m.competitors, m.events, testLogger()).(*refreshService)
	require.True(t, ok)
	svc.now = func() time.Time { return mondayNoonUTC }

	return svc, m
}

func TestRefreshService_RequestRefresh(t *testing.T) {
	t.Run("defaults to every source", func(t *testing.T) {
		svc, m := createTestRefreshService(t)
		ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.publisher.EXPECT().PublishRefreshEvent(mock.Anything, mock.MatchedBy(func(e *service.RefreshEvent) bool {
			return e.CityID == "copenhagen" && e.RequestID == "req-42" && len(e.Sources) == 3
		})).Return(nil)

		event, err := svc.RequestRefresh(ctx, "copenhagen", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"weather", "competitors", "events"}, event.Sources)
		assert.Equal(t, mondayNoonUTC, event.RequestedAt)
	})

	t.Run("unknown source", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)

		_, err := svc.RequestRefresh(context.Background(), "copenhagen", []string{"weather", "tides"})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Contains(t, appErr.Details(), "tides")
	})

	t.Run("unknown city", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("oslo").Return(entity.City{}, false)

		_, err := svc.RequestRefresh(context.Background(), "oslo", nil)
		assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))
	})

	t.Run("publish failure", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.publisher.EXPECT().PublishRefreshEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

		_, err := svc.RequestRefresh(context.Background(), "copenhagen", []string{"events"})
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshUnavailable))
	})
}

func TestRefreshService_ApplyRefresh(t *testing.T) {
	t.Run("drops and re-warms every source", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.cache.EXPECT().Delete(mock.Anything, "nomnom:weather:copenhagen").Return(nil)
		m.cache.EXPECT().Delete(mock.Anything, "nomnom:competitors:copenhagen").Return(nil)
		m.cache.EXPECT().Delete(mock.Anything, "nomnom:events:copenhagen:2026-10-19").Return(nil)
		m.weather.EXPECT().CurrentWeather(mock.Anything, testCopenhagen).Return(&entity.Weather{}, nil)
		m.competitors.EXPECT().Competitors(mock.Anything, testCopenhagen).Return([]entity.Competitor{}, nil)
		m.events.EXPECT().ActiveEvents(mock.Anything, "copenhagen").Return([]entity.Event{}, nil)

		err := svc.ApplyRefresh(context.Background(), &service.RefreshEvent{CityID: "copenhagen"})
		assert.NoError(t, err)
	})

	t.Run("provider failure is retryable", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.cache.EXPECT().Delete(mock.Anything, "nomnom:weather:copenhagen").Return(errors.New("redis down"))
		m.weather.EXPECT().CurrentWeather(mock.Anything, testCopenhagen).Return(nil, errors.New("status 503"))

		err := svc.ApplyRefresh(context.Background(), &service.RefreshEvent{CityID: "copenhagen", Sources: []string{"weather"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("unknown source is skipped", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		m.cache.EXPECT().Delete(mock.Anything, "nomnom:events:copenhagen:2026-10-19").Return(nil)
		m.events.EXPECT().ActiveEvents(mock.Anything, "copenhagen").Return([]entity.Event{}, nil)

		err := svc.ApplyRefresh(context.Background(), &service.RefreshEvent{CityID: "copenhagen", Sources: []string{"tides", "events"}})
		assert.NoError(t, err)
	})

	t.Run("unknown city is acknowledged", func(t *testing.T) {
		svc, m := createTestRefreshService(t)

		m.catalog.EXPECT().City("oslo").Return(entity.City{}, false)

		err := svc.ApplyRefresh(context.Background(), &service.RefreshEvent{CityID: "oslo"})
		assert.NoError(t, err)
	})
}
