package main

import (
	"context"
	"log/slog"
	"os"

	"catermatch/config"
	"catermatch/internal/delivery"
	"catermatch/internal/delivery/worker"
	"catermatch/internal/delivery/worker/handler"
	"catermatch/internal/infra/inference"
	logs "catermatch/internal/infra/log"
	"catermatch/internal/infra/persistence"
	"catermatch/internal/infra/persistence/postgres"
	"catermatch/internal/infra/pubsub"
	"catermatch/internal/usecase"
	"catermatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewTransactionManager,
			postgres.NewEventRequestRepository,
			postgres.NewCatererRepository,
			postgres.NewMatchRepository,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		inference.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewMatchingService,
			// The orchestrator only needs the resolving half of the location usecase.
			func(uc usecase.LocationUsecase) usecase.LocationResolver { return uc },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
