// Package worker serves the Pub/Sub push endpoint that fans dish events out
// to followers.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"foodiecircle/config"
	"foodiecircle/internal/delivery"
	"foodiecircle/internal/delivery/middleware"
	"foodiecircle/internal/delivery/worker/handler"
	"foodiecircle/internal/domain/lifecycle"
	"foodiecircle/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Pub/Sub caps push payloads at 10MB.
const pushBodyLimit = "10MB"

type pushReceiver interface {
	HandlePush(c echo.Context) error
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   newEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push pushReceiver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewAccessLogMiddleware(logger, cfg).Handle,
		middleware.Metrics,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting feed worker HTTP server", slog.String("host_port", s.addr))

	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down feed worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
