package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"encoding/json"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// CaseView is a case plus the figures derived from it at read time.
type CaseView struct {
	ID              uuid.UUID              `json:"id"`
	Source          rmacase.Source         `json:"source"`
	ShopifyReturnID *string                `json:"shopify_return_id,omitempty"`
	Status          rmacase.Stage          `json:"status"`
	Priority        rmacase.Priority       `json:"priority"`
	SLADueAt        *time.Time             `json:"sla_due_at,omitempty"`
	Warranty        rmacase.Warranty       `json:"warranty"`
	Inbound         rmacase.Tracking       `json:"inbound"`
	Outbound        rmacase.Tracking       `json:"outbound"`
	ReceivedAt      *time.Time             `json:"received_at,omitempty"`
	InspectedAt     *time.Time             `json:"inspected_at,omitempty"`
	ShippedBackAt   *time.Time             `json:"shipped_back_at,omitempty"`
	DeliveredBackAt *time.Time             `json:"delivered_back_at,omitempty"`
	Owner           rmacase.Person         `json:"owner"`
	Technician      rmacase.Person         `json:"technician"`
	AssignedAt      *time.Time             `json:"assigned_at,omitempty"`
	IssueSummary    string                 `json:"issue_summary"`
	IssueDetails    json.RawMessage        `json:"issue_details,omitempty"`
	SerialNumber    string                 `json:"serial_number,omitempty"`
	SKU             string                 `json:"sku,omitempty"`
	Customer        rmacase.Customer       `json:"customer"`
	OrderReference  string                 `json:"order_reference,omitempty"`
	Version         int64                  `json:"version"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	HoursInStage    float64                `json:"hours_in_stage"`
	Exceptions      []rmacase.Exception    `json:"exceptions"`
	Overdue         bool                   `json:"overdue"`
	Events          []rmacase.ServiceEvent `json:"events,omitempty"`
}

type CaseQueries interface {
	List(ctx context.Context, filter shared.CaseFilter) ([]CaseView, error)
	Get(ctx context.Context, id uuid.UUID) (*CaseView, error)
}

type caseQueriesImpl struct {
	store shared.CaseReadStore
	clock clock.Clock
}

func NewCaseQueries(store shared.CaseReadStore, clk clock.Clock) CaseQueries {
	return &caseQueriesImpl{store: store, clock: clk}
}

func (q *caseQueriesImpl) List(ctx context.Context, filter shared.CaseFilter) ([]CaseView, error) {
	cases, events, err := loadScope(ctx, q.store, filter)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	byCase := groupEvents(events)
	views := make([]CaseView, 0, len(cases))
	for _, c := range cases {
		views = append(views, toCaseView(c, byCase[c.ID], now, false))
	}
	return views, nil
}

func (q *caseQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CaseView, error) {
	c, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, readErr(err)
	}
	events, err := q.store.EventsFor(ctx, id)
	if err != nil {
		return nil, readErr(err)
	}
	view := toCaseView(c, events, q.clock.Now(), true)
	return &view, nil
}

func loadScope(ctx context.Context, store shared.CaseReadStore, filter shared.CaseFilter) ([]*rmacase.Case, []rmacase.ServiceEvent, error) {
	cases, err := store.List(ctx, filter)
	if err != nil {
		return nil, nil, readErr(err)
	}
	if len(cases) == 0 {
		return cases, nil, nil
	}
	ids := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	events, err := store.EventsFor(ctx, ids...)
	if err != nil {
		return nil, nil, readErr(err)
	}
	return cases, events, nil
}

func groupEvents(events []rmacase.ServiceEvent) map[uuid.UUID][]rmacase.ServiceEvent {
	out := make(map[uuid.UUID][]rmacase.ServiceEvent)
	for _, ev := range events {
		out[ev.CaseID] = append(out[ev.CaseID], ev)
	}
	return out
}

func toCaseView(c *rmacase.Case, events []rmacase.ServiceEvent, now time.Time, withEvents bool) CaseView {
	exceptions := c.Exceptions(now)
	if exceptions == nil {
		exceptions = []rmacase.Exception{}
	}
	v := CaseView{
		ID:              c.ID,
		Source:          c.Source,
		ShopifyReturnID: c.ShopifyReturnID,
		Status:          c.Status,
		Priority:        c.Priority,
		SLADueAt:        c.SLADueAt,
		Warranty:        c.Warranty,
		Inbound:         c.Inbound,
		Outbound:        c.Outbound,
		ReceivedAt:      c.ReceivedAt,
		InspectedAt:     c.InspectedAt,
		ShippedBackAt:   c.ShippedBackAt,
		DeliveredBackAt: c.DeliveredBackAt,
		Owner:           c.Owner,
		Technician:      c.Technician,
		AssignedAt:      c.AssignedAt,
		IssueSummary:    c.IssueSummary,
		IssueDetails:    c.IssueDetails,
		SerialNumber:    c.SerialNumber,
		SKU:             c.SKU,
		Customer:        c.Customer,
		OrderReference:  c.OrderReference,
		Version:         c.Version,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		HoursInStage:    c.HoursInStage(events, now),
		Exceptions:      exceptions,
		Overdue:         c.IsOverdue(now),
	}
	if withEvents {
		v.Events = events
	}
	return v
}

func readErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrCaseNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
