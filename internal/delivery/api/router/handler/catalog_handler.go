package handler

import (
	"log/slog"
	"net/http"

	"nomnom/internal/delivery/api/response"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MIMEImagePNG is the content type of QR code responses
const MIMEImagePNG = "image/png"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the static reference data: cities, hotspots, permits
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Cities handles GET /api/cities
func (h *CatalogHandler) Cities(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Cities(c.Request().Context()))
}

// Hotspots handles GET /api/hotspots
func (h *CatalogHandler) Hotspots(c echo.Context) error {
	var req HotspotsQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hotspots, err := h.catalogUC.Hotspots(c.Request().Context(), req.CityID, req.SimulatedHour)
	if err != nil {
		return err
	}

	return response.List(c, hotspots)
}

// HotspotsWithPermits handles GET /api/hotspots-with-permits
func (h *CatalogHandler) HotspotsWithPermits(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hotspots, err := h.catalogUC.HotspotsWithPermits(c.Request().Context(), req.CityID)
	if err != nil {
		return err
	}

	return response.List(c, hotspots)
}

// PermitInfo handles GET /api/permit-info
func (h *CatalogHandler) PermitInfo(c echo.Context) error {
	var req CityQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.catalogUC.PermitGuide(c.Request().Context(), req.CityID))
}

// HotspotQRCode handles GET /api/hotspots/:name/qr
func (h *CatalogHandler) HotspotQRCode(c echo.Context) error {
	var req struct {
		CityQuery
		Name string `param:"name" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.catalogUC.HotspotQRCode(c.Request().Context(), req.CityID, pathUnescape(req.Name))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, MIMEImagePNG, png)
}
