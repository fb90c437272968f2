package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"adminapi/config"
	"adminapi/internal/delivery"
	"adminapi/internal/delivery/http"
	"adminapi/internal/delivery/http/middleware"
	"adminapi/internal/delivery/http/router/handler"
	"adminapi/internal/infra/auth"
	logs "adminapi/internal/infra/log"
	"adminapi/internal/infra/persistence/postgres"
	"adminapi/internal/usecase"
	"adminapi/internal/usecase/impl"

	"go.uber.org/fx"
)

const tokenCleanupInterval = time.Hour

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
			startTokenCleanup,
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
			postgres.NewAdminRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewStudentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStudentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStudentHandler,
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
		),
	)
}

type tokenCleanupParams struct {
	fx.In
	fx.Lifecycle

	AuthUsecase usecase.AuthUsecase
	Logger      *slog.Logger
}

// startTokenCleanup periodically purges expired refresh tokens so the table
// does not grow without bound. Revoked but unexpired tokens are kept: they
// still answer refresh attempts with a definitive rejection.
func startTokenCleanup(params tokenCleanupParams) {
	cleanupCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(tokenCleanupInterval)
				defer ticker.Stop()

				for {
					select {
					case <-cleanupCtx.Done():
						return
					case <-ticker.C:
						if err := params.AuthUsecase.CleanupExpiredTokens(cleanupCtx); err != nil {
							params.Logger.Error("Token cleanup run failed", slog.Any("error", err))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
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
