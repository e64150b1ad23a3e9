package handler

import (
	"log/slog"

	"nomnom/internal/delivery/api/response"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScoringHandlerParams holds dependencies for ScoringHandler, injected by Fx.
type ScoringHandlerParams struct {
	fx.In

	ScoringUC usecase.ScoringUsecase
	Logger    *slog.Logger
}

// ScoringHandler serves scored hotspots and activity zones
type ScoringHandler struct {
	scoringUC usecase.ScoringUsecase
	logger    *slog.Logger
}

// NewScoringHandler is the constructor for ScoringHandler
func NewScoringHandler(params ScoringHandlerParams) *ScoringHandler {
	return &ScoringHandler{
		scoringUC: params.ScoringUC,
		logger:    params.Logger,
	}
}

// HotspotsScored handles GET /api/hotspots-scored
func (h *ScoringHandler) HotspotsScored(c echo.Context) error {
	req := newScoringQuery()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	points, err := h.scoringUC.ScoreHotspots(c.Request().Context(), req.Filters())
	if err != nil {
		return err
	}

	return response.List(c, points)
}

// HotspotsScoredGeoJSON handles GET /api/hotspots-scored/geojson
func (h *ScoringHandler) HotspotsScoredGeoJSON(c echo.Context) error {
	req := newScoringQuery()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	points, err := h.scoringUC.ScoreHotspots(c.Request().Context(), req.Filters())
	if err != nil {
		return err
	}

	return response.GeoJSON(c, scoredPointsCollection(points))
}

// ActivityZones handles GET /api/activity-zones
func (h *ScoringHandler) ActivityZones(c echo.Context) error {
	req := newScoringQuery()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	zones, err := h.scoringUC.ActivityZones(c.Request().Context(), req.Filters())
	if err != nil {
		return err
	}

	return response.List(c, zones)
}

// ActivityZonesGeoJSON handles GET /api/activity-zones/geojson
func (h *ScoringHandler) ActivityZonesGeoJSON(c echo.Context) error {
	req := newScoringQuery()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	zones, err := h.scoringUC.ActivityZones(c.Request().Context(), req.Filters())
	if err != nil {
		return err
	}

	return response.GeoJSON(c, zoneCollection(zones))
}
