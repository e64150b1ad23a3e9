package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nomnom/config"
	"nomnom/internal/delivery/api/router"
	"nomnom/internal/delivery/api/router/handler"
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/service"
	mockUsecase "nomnom/internal/mocks/usecase"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type apiMocks struct {
	catalog  *mockUsecase.MockCatalogUsecase
	provider *mockUsecase.MockProviderUsecase
	scoring  *mockUsecase.MockScoringUsecase
	refresh  *mockUsecase.MockRefreshUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

func newTestServer(t *testing.T, staticDir string) (*echo.Echo, apiMocks) {
	t.Helper()

	m := apiMocks{
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		provider: mockUsecase.NewMockProviderUsecase(t),
		scoring:  mockUsecase.NewMockScoringUsecase(t),
		refresh:  mockUsecase.NewMockRefreshUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.StaticDir = staticDir

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: m.catalog, Logger: logger}),
			ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{ProviderUC: m.provider, Logger: logger}),
			ScoringHandler:  handler.NewScoringHandler(handler.ScoringHandlerParams{ScoringUC: m.scoring, Logger: logger}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{RefreshUC: m.refresh, Logger: logger}),
			Config:          cfg,
		},
	})
	require.NoError(t, err)

	api, ok := srv.(*apiServer)
	require.True(t, ok)

	return api.server, m
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "abc-123", env.Meta.RequestID)
}

func TestServer_Cities(t *testing.T) {
	e, m := newTestServer(t, "")

	m.catalog.EXPECT().Cities(mock.Anything).Return(map[string]entity.City{
		"copenhagen": {ID: "copenhagen", Name: "Copenhagen", DefaultZoom: 13},
	})

	rec := do(e, http.MethodGet, "/api/cities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cities map[string]map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &cities))
	assert.Equal(t, "Copenhagen", cities["copenhagen"]["name"])
	assert.InDelta(t, 13, cities["copenhagen"]["default_zoom"], 0)
}

func TestServer_HotspotsScored(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		setup       func(m apiMocks)
		wantStatus  int
		wantCode    string
		wantDetails string
		wantCount   int
	}{
		{
			name:   "filters are forwarded",
			target: "/api/hotspots-scored?city_id=ghent&min_traffic=50&require_suitable_weather=true&use_live_data=true&simulated_hour=8",
			setup: func(m apiMocks) {
				m.scoring.EXPECT().ScoreHotspots(mock.Anything, mock.MatchedBy(func(f *usecase.ScoringFilters) bool {
					return f.CityID == "ghent" && f.MinTraffic == 50 && f.MaxCompetitionDistance == 1000 &&
						f.RequireSuitableWeather && f.UseLiveData && f.SimulatedHour != nil && *f.SimulatedHour == 8
				})).Return([]entity.ScoredPoint{{PointOfInterest: entity.PointOfInterest{Name: "Korenmarkt"}}}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:   "defaults",
			target: "/api/hotspots-scored",
			setup: func(m apiMocks) {
				m.scoring.EXPECT().ScoreHotspots(mock.Anything, mock.MatchedBy(func(f *usecase.ScoringFilters) bool {
					return f.CityID == "" && f.MinTraffic == 0 && f.SimulatedHour == nil && !f.UseLiveData
				})).Return([]entity.ScoredPoint{}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:        "min_traffic out of range",
			target:      "/api/hotspots-scored?min_traffic=101",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "min_traffic must be <= 100",
		},
		{
			name:        "simulated_hour out of range",
			target:      "/api/hotspots-scored?simulated_hour=24",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "simulated_hour must be <= 23",
		},
		{
			name:        "max_competition_distance out of range",
			target:      "/api/hotspots-scored?max_competition_distance=6000",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "max_competition_distance must be <= 5000",
		},
		{
			name:       "malformed number",
			target:     "/api/hotspots-scored?min_traffic=lots",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:   "unknown city",
			target: "/api/hotspots-scored?city_id=atlantis",
			setup: func(m apiMocks) {
				m.scoring.EXPECT().ScoreHotspots(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrCityNotFound, `city "atlantis"`))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "CITY_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t, "")
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := do(e, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			env := decode(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				if tt.wantDetails != "" {
					assert.Equal(t, tt.wantDetails, env.Error.Details)
				}

				return
			}

			require.NotNil(t, env.Meta.Count)
			assert.Equal(t, tt.wantCount, *env.Meta.Count)
		})
	}
}

func TestServer_GeoJSON(t *testing.T) {
	e, m := newTestServer(t, "")

	m.scoring.EXPECT().ScoreHotspots(mock.Anything, mock.Anything).Return([]entity.ScoredPoint{
		{
			PointOfInterest: entity.PointOfInterest{
				Name:       "Nyhavn",
				Coordinate: entity.Coordinate{Lat: 55.6798, Lon: 12.5912},
				Category:   entity.CategoryTourist,
			},
			BusinessScore:  72.5,
			Recommendation: entity.RecommendationGood,
		},
	}, nil)
	m.scoring.EXPECT().ActivityZones(mock.Anything, mock.Anything).Return([]entity.ZoneScore{
		{Name: "Harbour", CenterLat: 55.68, CenterLon: 12.59, HotspotCount: 2},
	}, nil)

	t.Run("scored hotspots", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/hotspots-scored/geojson", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

		var fc struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
		require.Len(t, fc.Features, 1)
		assert.Equal(t, []float64{12.5912, 55.6798}, fc.Features[0].Geometry.Coordinates)
		assert.Equal(t, "Nyhavn", fc.Features[0].Properties["name"])
		assert.Equal(t, "tourist", fc.Features[0].Properties["type"])
		assert.Equal(t, "good", fc.Features[0].Properties["recommendation"])
	})

	t.Run("zones", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/activity-zones/geojson", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Harbour"`)
		assert.Contains(t, rec.Body.String(), `"coordinates":[12.59,55.68]`)
	})
}

func TestServer_HotspotQRCode(t *testing.T) {
	e, m := newTestServer(t, "")

	m.catalog.EXPECT().HotspotQRCode(mock.Anything, "copenhagen", "King's Garden").Return([]byte("\x89PNG"), nil)
	m.catalog.EXPECT().HotspotQRCode(mock.Anything, "copenhagen", "Atlantis").
		Return(nil, errors.Wrap(domainerrors.ErrPlaceNotFound, "Atlantis"))

	rec := do(e, http.MethodGet, "/api/hotspots/King%27s%20Garden/qr?city_id=copenhagen", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec = do(e, http.MethodGet, "/api/hotspots/Atlantis/qr?city_id=copenhagen", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLACE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestServer_ProviderEndpoints(t *testing.T) {
	e, m := newTestServer(t, "")

	m.provider.EXPECT().Weather(mock.Anything, "copenhagen").Return(&entity.Weather{Error: "status 502"}, nil)
	m.provider.EXPECT().Competitors(mock.Anything, "").Return([]entity.Competitor{entity.NewCompetitorError(errors.New("overpass: 429"))}, nil)
	m.provider.EXPECT().PopularTimes(mock.Anything, "", "Nørreport Station").
		Return(&entity.Busyness{PlaceName: "Nørreport Station", CurrentPopularity: 64}, nil)

	rec := do(e, http.MethodGet, "/api/weather?city_id=copenhagen", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"error":"status 502"`)

	rec = do(e, http.MethodGet, "/api/cafes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"error":"overpass: 429"}]`, string(decode(t, rec).Data))

	rec = do(e, http.MethodGet, "/api/popular-times/N%C3%B8rreport%20Station", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"current_popularity":64`)
}

func TestServer_AdminRefresh(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		e, m := newTestServer(t, "")

		m.refresh.EXPECT().RequestRefresh(mock.Anything, "copenhagen", []string{"weather"}).
			Return(&service.RefreshEvent{CityID: "copenhagen", Sources: []string{"weather"}}, nil)

		rec := do(e, http.MethodPost, "/api/admin/refresh", `{"city_id":"copenhagen","sources":["weather"]}`)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"city_id":"copenhagen"`)
	})

	t.Run("unknown source", func(t *testing.T) {
		e, _ := newTestServer(t, "")

		rec := do(e, http.MethodPost, "/api/admin/refresh", `{"city_id":"copenhagen","sources":["tides"]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("publisher down", func(t *testing.T) {
		e, m := newTestServer(t, "")

		m.refresh.EXPECT().RequestRefresh(mock.Anything, "", []string(nil)).
			Return(nil, domainerrors.ErrRefreshUnavailable.WrapMessage("topic not found"))

		rec := do(e, http.MethodPost, "/api/admin/refresh", `{}`)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "REFRESH_UNAVAILABLE", decode(t, rec).Error.Code)
	})
}

func TestServer_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>nomnom</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	e, m := newTestServer(t, dir)
	m.catalog.EXPECT().Cities(mock.Anything).Return(map[string]entity.City{})

	tests := []struct {
		target     string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "<html>nomnom</html>"},
		{"/app.js", http.StatusOK, "console.log(1)"},
		{"/map/copenhagen", http.StatusOK, "<html>nomnom</html>"},
		{"/api/cities", http.StatusOK, `"data":{}`},
		{"/api/unknown", http.StatusNotFound, `"code":"HTTP_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestServer_UnknownAPIPathWithoutStatic(t *testing.T) {
	e, _ := newTestServer(t, "")

	rec := do(e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
