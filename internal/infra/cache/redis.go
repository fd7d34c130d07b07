// Package cache holds the Redis-backed learned location store.
package cache

import (
	"context"
	"log/slog"
	"time"

	"catermatch/config"
	"catermatch/internal/domain/lifecycle"
	"catermatch/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "catermatch:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to the configured Redis and closes it on shutdown.
func NewRedisClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Address == "" {
		return nil, errors.New("redis address is required for the redis learned store")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("address", cfg.Address))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}

func keyPrefix(cfg *config.RedisConfig) string {
	if cfg == nil || cfg.KeyPrefix == "" {
		return defaultKeyPrefix
	}

	return cfg.KeyPrefix
}
