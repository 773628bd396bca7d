package main

import (
	"context"
	"log/slog"
	"os"

	"dealsmarket/config"
	"dealsmarket/internal/delivery"
	"dealsmarket/internal/delivery/http"
	"dealsmarket/internal/delivery/http/middleware"
	"dealsmarket/internal/delivery/http/router/handler"
	"dealsmarket/internal/infra/auth"
	"dealsmarket/internal/infra/cache"
	logs "dealsmarket/internal/infra/log"
	"dealsmarket/internal/infra/persistence/postgres"
	"dealsmarket/internal/infra/pubsub"
	"dealsmarket/internal/infra/qrcode"
	"dealsmarket/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewUserProfileRepository,
			postgres.NewRetailerRepository,
			postgres.NewDealRepository,
			postgres.NewWatchlistRepository,
			postgres.NewPriceAlertRepository,
			postgres.NewCategoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccessService,
			impl.NewRetailerService,
			impl.NewDealService,
			impl.NewWatchlistService,
			impl.NewPriceAlertService,
			impl.NewProfileService,
			impl.NewCategoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionCookies,
			middleware.NewSessionMiddleware,
			middleware.NewEdgeGate,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPageHandler,
			handler.NewRetailerHandler,
			handler.NewDealHandler,
			handler.NewConsumerHandler,
			handler.NewAdminHandler,
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
