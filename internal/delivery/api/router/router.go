// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"os"
	"strings"

	"nomnom/config"
	"nomnom/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	ProviderHandler *handler.ProviderHandler
	ScoringHandler  *handler.ScoringHandler
	AdminHandler    *handler.AdminHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	providerHandler *handler.ProviderHandler
	scoringHandler  *handler.ScoringHandler
	adminHandler    *handler.AdminHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		providerHandler: params.ProviderHandler,
		scoringHandler:  params.ScoringHandler,
		adminHandler:    params.AdminHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Reference data
	api.GET("/cities", r.catalogHandler.Cities)
	api.GET("/hotspots", r.catalogHandler.Hotspots)
	api.GET("/hotspots/:name/qr", r.catalogHandler.HotspotQRCode)
	api.GET("/hotspots-with-permits", r.catalogHandler.HotspotsWithPermits)
	api.GET("/permit-info", r.catalogHandler.PermitInfo)

	// Provider passthrough
	api.GET("/weather", r.providerHandler.Weather)
	api.GET("/cafes", r.providerHandler.Cafes)
	api.GET("/events", r.providerHandler.Events)
	api.GET("/popular-times/:place", r.providerHandler.PopularTimes)
	api.GET("/hotspots-live", r.providerHandler.HotspotsLive)

	// Scoring
	api.GET("/hotspots-scored", r.scoringHandler.HotspotsScored)
	api.GET("/hotspots-scored/geojson", r.scoringHandler.HotspotsScoredGeoJSON)
	api.GET("/activity-zones", r.scoringHandler.ActivityZones)
	api.GET("/activity-zones/geojson", r.scoringHandler.ActivityZonesGeoJSON)

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/refresh", r.adminHandler.Refresh)
	}
}

// RegisterStatic serves the single page app with HTML5 history fallback
// when the static directory exists. /api paths never fall back to index.html.
func (r *router) RegisterStatic(e *echo.Echo) bool {
	dir := r.config.HTTP.StaticDir
	if dir == "" {
		return false
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return false
	}

	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  dir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path

			return path == "/api" || strings.HasPrefix(path, "/api/")
		},
	}))

	return true
}
