package store_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wanderworld/internal/config"
	"wanderworld/internal/infra"
	"wanderworld/internal/repositories"
	mem "wanderworld/pkg/memcache"
)

const janitorInterval = 5 * time.Minute

var Module = fx.Provide(provideViewRepository)

func provideViewRepository(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (repositories.ViewRepository, error) {
	if cfg.ViewStore == config.ViewStoreRedis {
		rdb, err := infra.InitRedis(cfg, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseRedis(rdb, logger)
				return nil
			},
		})
		return repositories.NewRedisViewRepository(rdb, cfg.ViewTTL), nil
	}

	store := mem.NewTTLStore()
	var stopJanitor func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stopJanitor = store.StartJanitor(janitorInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if stopJanitor != nil {
				stopJanitor()
			}
			return nil
		},
	})
	logger.Info("Using in-memory view store", zap.Duration("ttl", cfg.ViewTTL))
	return repositories.NewMemoryViewRepository(store, cfg.ViewTTL), nil
}
