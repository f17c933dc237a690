package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra/cache"
	"retail-ops-core/internal/infra/memstore"
	"retail-ops-core/internal/infra/repository"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/usecase/gateway"
	"retail-ops-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var IdempotencyModule = fx.Module("idempotency",
	fx.Provide(
		NewIdempotencyStore,
		NewGateway,
		NewJanitor,
	),
	fx.Invoke(startJanitor),
)

// NewIdempotencyStore selects the backend named by IDEMPOTENCY_BACKEND.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (shared.IdempotencyStore, error) {
	switch cfg.Idempotency.Backend {
	case "", "postgres":
		return repository.NewIdempotencyRepository(pool), nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		client, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return cache.NewIdempotencyStore(client), nil
	case "memory":
		logger.Warn("インメモリの冪等性ストアを使用します（単一プロセス専用）")
		return memstore.NewIdempotencyStore(), nil
	default:
		return nil, fmt.Errorf("unknown IDEMPOTENCY_BACKEND %q", cfg.Idempotency.Backend)
	}
}

func NewGateway(store shared.IdempotencyStore, clk clock.Clock, cfg config.Config) gateway.Gateway {
	// the middleware checks the caller's part; the gateway sees scope + ":" + key
	return gateway.NewGateway(store, clk, gateway.Options{
		TTL:          cfg.Idempotency.TTL,
		StaleAfter:   cfg.Idempotency.StaleAfter,
		MaxKeyLength: cfg.Idempotency.MaxKeyLength + idempotency.MaxScopeLength + 1,
	})
}

func NewJanitor(store shared.IdempotencyStore, clk clock.Clock, cfg config.Config) *gateway.Janitor {
	return gateway.NewJanitor(store, clk, cfg.Idempotency.PurgeInterval)
}

func startJanitor(lc fx.Lifecycle, j *gateway.Janitor) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				j.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
