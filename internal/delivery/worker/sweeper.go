// Package worker hosts background deliveries that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"linkvault/config"
	"linkvault/internal/delivery"
	"linkvault/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the code sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lifecycle           fx.Lifecycle
	Config              *config.Config
	Logger              *slog.Logger
	RegistrationUsecase usecase.RegistrationUsecase
}

// codeSweeper periodically garbage-collects expired confirmation codes.
type codeSweeper struct {
	interval     time.Duration
	registration usecase.RegistrationUsecase
	logger       *slog.Logger
	done         chan struct{}
}

// NewCodeSweeper creates the sweeper delivery and registers its shutdown hook.
func NewCodeSweeper(params SweeperParams) delivery.Delivery {
	sweeper := &codeSweeper{
		interval:     params.Config.Sweeper.Interval,
		registration: params.RegistrationUsecase,
		logger:       params.Logger,
		done:         make(chan struct{}),
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(sweeper.done)

			return nil
		},
	})

	return sweeper
}

// Serve runs the sweep loop until shutdown.
func (s *codeSweeper) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Confirmation code sweeper started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.done:
			s.logger.Info("Confirmation code sweeper stopped")

			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *codeSweeper) sweep(ctx context.Context) {
	count, err := s.registration.SweepExpiredCodes(ctx)
	if err != nil {
		s.logger.Error("Failed to sweep expired confirmation codes", slog.Any("error", err))

		return
	}

	if count > 0 {
		s.logger.Info("Expired confirmation codes removed", slog.Int64("count", count))
	}
}
