package gateway

import (
	"context"
	"log/slog"
	"time"

	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/usecase/shared"
)

// Janitor purges expired idempotency records. Expired records are already treated
// as absent by Execute, so purging only bounds storage.
type Janitor struct {
	store    shared.IdempotencyStore
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
}

func NewJanitor(store shared.IdempotencyStore, clk clock.Clock, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Janitor{
		store:    store,
		clock:    clk,
		interval: interval,
		logger:   slog.Default().With("component", "idempotency_janitor"),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.Sweep(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (j *Janitor) Sweep(ctx context.Context) int64 {
	n, err := j.store.DeleteExpired(ctx, j.clock.Now())
	if err != nil {
		j.logger.WarnContext(ctx, "failed to purge expired idempotency keys", "error", err.Error())
		return 0
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "purged expired idempotency keys", "count", n)
	}
	return n
}
