// Package http hosts the echo HTTP server delivery.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"linkvault/config"
	"linkvault/internal/delivery"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router"
	"linkvault/internal/delivery/http/validator"
	deliverymiddleware "linkvault/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const defaultShutdownTimeout = 10 * time.Second

// Params holds dependencies for the HTTP server, injected by Fx.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger

	Router          router.Router
	RequestIDMw     *deliverymiddleware.RequestIDMiddleware
	LoggerMw        *deliverymiddleware.LoggerMiddleware
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
}

type server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *slog.Logger
}

// NewServer creates the HTTP delivery and registers its shutdown hook.
func NewServer(params Params) delivery.Delivery {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(slogecho.New(params.Logger))
	e.Use(params.RequestIDMw.Process)
	e.Use(params.LoggerMw.Handle)

	params.Router.RegisterRoutes(e)

	srv := &server{
		echo:   e,
		cfg:    params.Config,
		logger: params.Logger,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, defaultShutdownTimeout)
			defer cancel()

			return srv.echo.Shutdown(shutdownCtx)
		},
	})

	return srv
}

// Serve starts the HTTP listener and blocks until shutdown.
func (s *server) Serve(_ context.Context) error {
	timeouts := s.cfg.HTTP.Timeouts
	s.echo.Server.ReadTimeout = timeouts.ReadTimeout
	s.echo.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	s.echo.Server.WriteTimeout = timeouts.WriteTimeout
	s.echo.Server.IdleTimeout = timeouts.IdleTimeout

	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("HTTP server starting", slog.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server failed")
	}

	return nil
}
