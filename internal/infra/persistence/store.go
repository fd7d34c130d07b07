// Package persistence picks the backends of the location resolver's stores.
package persistence

import (
	"log/slog"

	"catermatch/config"
	"catermatch/internal/domain/constants"
	"catermatch/internal/domain/repository"
	"catermatch/internal/errors"
	"catermatch/internal/infra/cache"
	"catermatch/internal/infra/persistence/memory"
	"catermatch/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// StoreParams holds dependencies for the resolver stores, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

func learnedStore(cfg *config.Config) string {
	if cfg.Resolver == nil || cfg.Resolver.LearnedStore == "" {
		return constants.LearnedStorePostgres
	}

	return cfg.Resolver.LearnedStore
}

// NewLearnedLocationRepository returns the learned store named by resolver.learnedStore.
func NewLearnedLocationRepository(params StoreParams) (repository.LearnedLocationRepository, error) {
	store := learnedStore(params.Config)

	switch store {
	case constants.LearnedStorePostgres:
		params.Logger.Info("Learned locations stored in PostgreSQL")

		return postgres.NewLearnedLocationRepository(params.DB), nil

	case constants.LearnedStoreRedis:
		rdb, err := cache.NewRedisClient(cache.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Learned locations stored in Redis")

		return cache.NewLearnedLocationStore(rdb, params.Config), nil

	case constants.LearnedStoreMemory:
		params.Logger.Warn("Learned locations kept in memory, they are lost on restart")

		return memory.NewLearnedLocationStore(), nil

	default:
		return nil, errors.Errorf("unknown learned store: %s", store)
	}
}

// NewLocationEvalRepository stores evaluation records next to the relational data,
// or in memory when the learned store is in memory as well.
func NewLocationEvalRepository(params StoreParams) repository.LocationEvalRepository {
	if learnedStore(params.Config) == constants.LearnedStoreMemory {
		return memory.NewLocationEvalSink()
	}

	return postgres.NewLocationEvalRepository(params.DB)
}

// Module provides the resolver stores FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLearnedLocationRepository,
		NewLocationEvalRepository,
	),
)
