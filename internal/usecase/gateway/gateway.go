package gateway

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/gateway/$GOFILE -package=gatewaymock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"
)

// Handler performs the retry-unsafe side effect. A returned error or a 5xx response
// releases the key so a later attempt may run the handler again.
type Handler func(ctx context.Context) (idempotency.StoredResponse, error)

type Result struct {
	Response idempotency.StoredResponse
	Replayed bool
}

type Gateway interface {
	Execute(ctx context.Context, key, fingerprint string, handler Handler) (*Result, error)
}

type Options struct {
	TTL          time.Duration
	StaleAfter   time.Duration
	MaxKeyLength int
}

// A lost race on create or takeover is retried this many times before giving up.
const maxAcquireAttempts = 3

type gatewayImpl struct {
	store  shared.IdempotencyStore
	clock  clock.Clock
	opts   Options
	logger *slog.Logger
}

func NewGateway(store shared.IdempotencyStore, clk clock.Clock, opts Options) Gateway {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = 2 * time.Minute
	}
	if opts.MaxKeyLength <= 0 {
		opts.MaxKeyLength = 255
	}
	return &gatewayImpl{
		store:  store,
		clock:  clk,
		opts:   opts,
		logger: slog.Default().With("component", "idempotency_gateway"),
	}
}

func (g *gatewayImpl) Execute(ctx context.Context, key, fingerprint string, handler Handler) (*Result, error) {
	if err := idempotency.ValidateKey(key, g.opts.MaxKeyLength); err != nil {
		if errors.Is(err, idempotency.ErrKeyEmpty) {
			return nil, errs.Mark(err, errs.ErrIdempotencyKeyRequired)
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyKeyInvalid)
	}

	for attempt := 0; attempt < maxAcquireAttempts; attempt++ {
		now := g.clock.Now()
		rec := idempotency.NewInProgress(key, fingerprint, now, g.opts.TTL, g.opts.StaleAfter)

		inserted, err := g.store.TryInsert(ctx, rec)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if inserted {
			return g.run(ctx, rec, handler)
		}

		existing, err := g.store.Get(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Released or purged between insert and read.
				continue
			}
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}

		if existing.Reclaimable(now) {
			replaced, err := g.store.Replace(ctx, existing.Token, rec)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
			}
			if replaced {
				g.logger.Warn("reclaimed idempotency key",
					"key", key,
					"previous_state", existing.State.String(),
					"expired", existing.IsExpired(now))
				return g.run(ctx, rec, handler)
			}
			continue
		}

		switch existing.State {
		case idempotency.StateCompleted:
			if existing.Fingerprint != fingerprint {
				return nil, errs.Wrapf(errs.ErrIdempotencyKeyReused, "key %q", key)
			}
			if existing.Response == nil {
				return nil, errs.Wrap(errs.ErrIdempotencyCheckFailed, "completed record has no response")
			}
			return &Result{Response: *existing.Response, Replayed: true}, nil
		default:
			return nil, errs.Wrapf(errs.ErrIdempotencyInProgress, "key %q", key)
		}
	}

	return nil, errs.Wrap(errs.ErrIdempotencyCheckFailed, "could not acquire idempotency key")
}

// run invokes the handler detached from caller cancellation: once started, a client
// disconnect must not leave the side effect half-recorded.
func (g *gatewayImpl) run(ctx context.Context, rec *idempotency.Record, handler Handler) (*Result, error) {
	workCtx := context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			g.release(workCtx, rec)
			panic(r)
		}
	}()

	resp, err := handler(workCtx)
	if err != nil {
		g.release(workCtx, rec)
		return nil, err
	}

	if !resp.Cacheable() {
		g.release(workCtx, rec)
		return &Result{Response: resp}, nil
	}

	if err := g.complete(workCtx, rec, resp); err != nil {
		// The side effect already happened; the caller still gets its response.
		g.logger.Error("failed to record idempotent response",
			"key", rec.Key,
			"error", err.Error())
		g.hold(workCtx, rec)
	}
	return &Result{Response: resp}, nil
}

// Attempts at recording a finished response before the lock is held to expiry instead.
const completeAttempts = 3

func (g *gatewayImpl) complete(ctx context.Context, rec *idempotency.Record, resp idempotency.StoredResponse) error {
	var err error
	for range completeAttempts {
		if err = g.store.Complete(ctx, rec.Key, rec.Token, resp); err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			// lock was lost; nothing left to record against
			return err
		}
	}
	return err
}

// hold keeps an unrecorded key in progress until the record expires, so retries get
// ErrIdempotencyInProgress rather than reclaiming it after StaleAfter and running the
// handler a second time.
func (g *gatewayImpl) hold(ctx context.Context, rec *idempotency.Record) {
	held := *rec
	held.LockedUntil = rec.ExpiresAt
	ok, err := g.store.Replace(ctx, rec.Token, &held)
	if err != nil || !ok {
		g.logger.Error("failed to hold unrecorded idempotency key; a retry after the stale window may repeat the side effect",
			"key", rec.Key,
			"locked_until", rec.LockedUntil,
			"error", errString(err))
	}
}

func errString(err error) string {
	if err == nil {
		return "lock no longer held"
	}
	return err.Error()
}

func (g *gatewayImpl) release(ctx context.Context, rec *idempotency.Record) {
	if err := g.store.Release(ctx, rec.Key, rec.Token); err != nil {
		// The lock still expires at LockedUntil.
		g.logger.Warn("failed to release idempotency key",
			"key", rec.Key,
			"error", err.Error())
	}
}
