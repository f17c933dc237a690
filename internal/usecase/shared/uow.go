package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"retail-ops-core/internal/domain/rmacase"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Cases() CaseRepository
}

// CaseRepository is the write side of the case store. Update succeeds only when the
// stored version still equals expectedVersion and bumps it on success.
type CaseRepository interface {
	Insert(ctx context.Context, c *rmacase.Case) error
	Update(ctx context.Context, c *rmacase.Case, expectedVersion int64) error
	FindByID(ctx context.Context, id uuid.UUID) (*rmacase.Case, error)
	FindByShopifyReturnID(ctx context.Context, returnID string) (*rmacase.Case, error)
	AppendEvents(ctx context.Context, events ...rmacase.ServiceEvent) error
}
