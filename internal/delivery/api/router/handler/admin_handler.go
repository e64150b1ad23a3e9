package handler

import (
	"log/slog"
	"net/http"

	"nomnom/internal/delivery/api/response"
	"nomnom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	RefreshUC usecase.RefreshUsecase
	Logger    *slog.Logger
}

// AdminHandler handles operator endpoints
type AdminHandler struct {
	refreshUC usecase.RefreshUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		refreshUC: params.RefreshUC,
		logger:    params.Logger,
	}
}

// Refresh handles POST /api/admin/refresh; the refresher worker does the work
func (h *AdminHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.refreshUC.RequestRefresh(c.Request().Context(), req.CityID, req.Sources)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, event)
}
