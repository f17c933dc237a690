package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"retail-ops-core/internal/domain/idempotency"

	"github.com/google/uuid"
)

// IdempotencyStore holds at most one record per key. TryInsert is the atomic
// create-if-absent step; Replace swaps out a record only while it still carries
// expectedToken, so two callers racing to reclaim an abandoned key cannot both win.
// Complete and Release act only when token matches the current holder.
type IdempotencyStore interface {
	TryInsert(ctx context.Context, rec *idempotency.Record) (bool, error)
	Get(ctx context.Context, key string) (*idempotency.Record, error)
	Replace(ctx context.Context, expectedToken uuid.UUID, rec *idempotency.Record) (bool, error)
	Complete(ctx context.Context, key string, token uuid.UUID, resp idempotency.StoredResponse) error
	Release(ctx context.Context, key string, token uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
