package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"strings"

	"retail-ops-core/internal/domain/rmacase"

	"github.com/google/uuid"
)

// CaseFilter is the predicate set shared by case listing and analytics. Zero
// fields do not filter.
type CaseFilter struct {
	Source          rmacase.Source
	WarrantyStatus  rmacase.WarrantyStatus
	Priority        rmacase.Priority
	TechnicianEmail string
}

func (f CaseFilter) Matches(c *rmacase.Case) bool {
	if f.Source != "" && c.Source != f.Source {
		return false
	}
	if f.WarrantyStatus != "" && c.Warranty.Status != f.WarrantyStatus {
		return false
	}
	if f.Priority != "" && c.Priority != f.Priority {
		return false
	}
	if f.TechnicianEmail != "" && !strings.EqualFold(c.Technician.Email, strings.TrimSpace(f.TechnicianEmail)) {
		return false
	}
	return true
}

// CaseReadStore is the query side. List orders by created_at descending.
type CaseReadStore interface {
	List(ctx context.Context, filter CaseFilter) ([]*rmacase.Case, error)
	Get(ctx context.Context, id uuid.UUID) (*rmacase.Case, error)
	EventsFor(ctx context.Context, caseIDs ...uuid.UUID) ([]rmacase.ServiceEvent, error)
}

// EventPublisher fans committed service events out to other systems. Delivery is
// best-effort; the case store stays the source of truth.
type EventPublisher interface {
	Publish(ctx context.Context, events ...rmacase.ServiceEvent) error
}
