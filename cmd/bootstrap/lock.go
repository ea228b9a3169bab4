package bootstrap

import (
	"context"
	"log/slog"

	"library-admin/internal/infra/lock"
	"library-admin/internal/pkg/config"
	"library-admin/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
		fx.Annotate(
			NewLockGuard,
			fx.As(new(shared.LockGuard)),
		),
	),
)

func NewLocker(lc fx.Lifecycle, cfg config.LockConfig) (lock.Locker, error) {
	switch cfg.Driver {
	case config.LockDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		slog.Info("lock driver initialized", "driver", cfg.Driver, "addr", cfg.RedisAddr)
		return lock.NewRedisLocker(client), nil
	case config.LockDriverNoop:
		slog.Warn("lock driver initialized", "driver", cfg.Driver)
		return lock.NewNoOpLocker(), nil
	default:
		l := lock.NewMemoryLocker()
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				l.Close()
				return nil
			},
		})
		slog.Info("lock driver initialized", "driver", cfg.Driver)
		return l, nil
	}
}

func NewLockGuard(l lock.Locker, cfg config.LockConfig) *lock.Guard {
	return lock.NewGuard(l, cfg)
}
