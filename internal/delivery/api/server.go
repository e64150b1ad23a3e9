package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"nomnom/config"
	"nomnom/internal/delivery"
	apimiddleware "nomnom/internal/delivery/api/middleware"
	"nomnom/internal/delivery/api/router"
	"nomnom/internal/delivery/api/validator"
	"nomnom/internal/delivery/middleware"
	"nomnom/internal/domain/lifecycle"
	"nomnom/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// scoring and GeoJSON payloads for a whole city compress well
const gzipLevel = 5

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the public API: JSON routes under /api, the health probe
// and, when configured, the web client.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg)
	useMiddleware(e, params.Cfg, params.Logger)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	if r.RegisterStatic(e) {
		params.Logger.Info("Serving web client", slog.String("dir", params.Cfg.HTTP.StaticDir))
	}
	r.RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger.With(slog.String("server", "api")),
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	return e
}

// useMiddleware installs the chain in order: panic recovery, request id (so
// the logger sees it), access log, CORS for the web client, body limit, gzip.
func useMiddleware(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))

	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Level: gzipLevel,
		Skipper: func(c echo.Context) bool {
			// PNG share codes are already compressed
			return strings.HasSuffix(c.Path(), "/qr")
		},
	}))
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
