package handler

import (
	"log/slog"
	"net/http"

	"nomnom/internal/delivery/api/response"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler exposes the external data providers
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// Weather handles GET /api/weather
func (h *ProviderHandler) Weather(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	weather, err := h.providerUC.Weather(c.Request().Context(), req.CityID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, weather)
}

// Cafes handles GET /api/cafes
func (h *ProviderHandler) Cafes(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cafes, err := h.providerUC.Competitors(c.Request().Context(), req.CityID)
	if err != nil {
		return err
	}

	return response.List(c, cafes)
}

// Events handles GET /api/events
func (h *ProviderHandler) Events(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	events, err := h.providerUC.Events(c.Request().Context(), req.CityID)
	if err != nil {
		return err
	}

	return response.List(c, events)
}

// PopularTimes handles GET /api/popular-times/:place
func (h *ProviderHandler) PopularTimes(c echo.Context) error {
	var req struct {
		CityQuery
		Place string `param:"place" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reading, err := h.providerUC.PopularTimes(c.Request().Context(), req.CityID, pathUnescape(req.Place))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, reading)
}

// HotspotsLive handles GET /api/hotspots-live
func (h *ProviderHandler) HotspotsLive(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hotspots, err := h.providerUC.HotspotsLive(c.Request().Context(), req.CityID)
	if err != nil {
		return err
	}

	return response.List(c, hotspots)
}
