package main

import (
	"context"
	"log/slog"
	"os"

	"linkvault/config"
	"linkvault/internal/delivery"
	"linkvault/internal/delivery/http"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router"
	"linkvault/internal/delivery/http/router/handler"
	deliverymiddleware "linkvault/internal/delivery/middleware"
	"linkvault/internal/delivery/worker"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/infra/auth"
	logs "linkvault/internal/infra/log"
	"linkvault/internal/infra/mailer"
	"linkvault/internal/infra/persistence/postgres"
	"linkvault/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewConfirmationCodeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTCodec,
			newPayloadBuilders,
			mailer.NewUnisenderMailer,
		),
	)
}

// newPayloadBuilders adapts the persistence repositories to the lookup
// interfaces the payload schemas resolve fields through.
func newPayloadBuilders(cfg *config.Config, users repository.UserRepository, sessions repository.SessionRepository) service.PayloadBuilders {
	return auth.NewPayloadBuilders(cfg, users, sessions)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewRegistrationService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewAuthGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRegistrationHandler,
			handler.NewSessionHandler,
			handler.NewAccountHandler,
			router.New,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewCodeSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
