package handler

import (
	"net/url"

	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultMaxCompetitionDistance = 1000

// CityQuery selects a city; an empty id means the default city
type CityQuery struct {
	CityID string `query:"city_id"`
}

// HotspotsQuery adds the optional simulated wall-clock hour
type HotspotsQuery struct {
	CityQuery
	SimulatedHour *int `query:"simulated_hour" validate:"omitempty,min=0,max=23"`
}

// ScoringQuery holds the filters shared by the scored hotspot and zone endpoints
type ScoringQuery struct {
	CityQuery
	MinTraffic             int  `query:"min_traffic" validate:"min=0,max=100"`
	MaxCompetitionDistance int  `query:"max_competition_distance" validate:"min=0,max=5000"`
	RequireSuitableWeather bool `query:"require_suitable_weather"`
	UseLiveData            bool `query:"use_live_data"`
	SimulatedHour          *int `query:"simulated_hour" validate:"omitempty,min=0,max=23"`
}

// Filters converts the query to usecase filters
func (q *ScoringQuery) Filters() *usecase.ScoringFilters {
	return &usecase.ScoringFilters{
		CityID:                 q.CityID,
		MinTraffic:             q.MinTraffic,
		MaxCompetitionDistance: q.MaxCompetitionDistance,
		RequireSuitableWeather: q.RequireSuitableWeather,
		UseLiveData:            q.UseLiveData,
		SimulatedHour:          q.SimulatedHour,
	}
}

// RefreshRequest is the body of POST /api/admin/refresh
type RefreshRequest struct {
	CityID  string   `json:"city_id"`
	Sources []string `json:"sources" validate:"omitempty,dive,oneof=weather competitors events"`
}

// bindAndValidate binds path, query and body parameters into req and validates it
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request parameters")
	}

	return c.Validate(req)
}

func newScoringQuery() *ScoringQuery {
	return &ScoringQuery{MaxCompetitionDistance: defaultMaxCompetitionDistance}
}

// echo leaves path params escaped when the client escaped more than net/url would
func pathUnescape(v string) string {
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}

	return v
}
