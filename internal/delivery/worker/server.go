package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"nomnom/config"
	"nomnom/internal/delivery"
	"nomnom/internal/delivery/middleware"
	"nomnom/internal/delivery/worker/handler"
	"nomnom/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// push envelopes carry one small refresh event
const pushBodyLimit = "64KB"

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	server   *echo.Echo
}

// ServerParams holds dependencies for the refresher server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the refresher HTTP server. It exposes the Pub/Sub push
// endpoint, which is also where the local publisher delivers.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	verifyPushAuth := params.Cfg.Refresh != nil && params.Cfg.Refresh.VerifyPushAuth
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":           "ok",
			"verify_push_auth": verifyPushAuth,
		})
	})

	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(listenPort(params.Cfg))),
		logger:   params.Logger.With(slog.String("server", "refresher")),
		server:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// listenPort prefers refresh.port so the API and refresher can share one config file.
func listenPort(cfg *config.Config) int {
	if cfg.Refresh != nil && cfg.Refresh.Port > 0 {
		return cfg.Refresh.Port
	}

	return cfg.HTTP.Port
}

// Serve starts the refresher HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting refresher HTTP server", slog.String("host_port", s.hostPort))
	if err := s.server.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down refresher HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
