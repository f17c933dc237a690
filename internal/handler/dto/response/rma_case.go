package response

import (
	"encoding/json"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CaseResponse struct {
	ID              string              `json:"id"`
	Source          rmacase.Source      `json:"source"`
	ShopifyReturnID *string             `json:"shopify_return_id,omitempty"`
	Status          rmacase.Stage       `json:"status"`
	Priority        rmacase.Priority    `json:"priority"`
	SLADueAt        *time.Time          `json:"sla_due_at,omitempty"`
	Warranty        rmacase.Warranty    `json:"warranty"`
	Inbound         rmacase.Tracking    `json:"inbound"`
	Outbound        rmacase.Tracking    `json:"outbound"`
	ReceivedAt      *time.Time          `json:"received_at,omitempty"`
	InspectedAt     *time.Time          `json:"inspected_at,omitempty"`
	ShippedBackAt   *time.Time          `json:"shipped_back_at,omitempty"`
	DeliveredBackAt *time.Time          `json:"delivered_back_at,omitempty"`
	Owner           rmacase.Person      `json:"owner"`
	Technician      rmacase.Person      `json:"technician"`
	AssignedAt      *time.Time          `json:"assigned_at,omitempty"`
	IssueSummary    string              `json:"issue_summary"`
	IssueDetails    json.RawMessage     `json:"issue_details,omitempty" swaggertype:"object"`
	SerialNumber    string              `json:"serial_number,omitempty"`
	SKU             string              `json:"sku,omitempty"`
	Customer        rmacase.Customer    `json:"customer"`
	OrderReference  string              `json:"order_reference,omitempty"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	HoursInStage    float64             `json:"hours_in_stage"`
	Exceptions      []rmacase.Exception `json:"exceptions"`
	Overdue         bool                `json:"overdue"`
	Events          []EventResponse     `json:"events,omitempty" copier:"-"`
}

type EventResponse struct {
	ID        string            `json:"id"`
	EventType rmacase.EventType `json:"event_type"`
	Summary   string            `json:"summary"`
	Notes     string            `json:"notes,omitempty"`
	Metadata  json.RawMessage   `json:"metadata,omitempty" swaggertype:"object"`
	Actor     string            `json:"actor,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type CaseListResponse struct {
	Cases []*CaseResponse `json:"cases"`
	Count int             `json:"count"`
}

type TrackingUpdateResponse struct {
	Case           *CaseResponse  `json:"case"`
	AutoAdvancedTo *rmacase.Stage `json:"auto_advanced_to,omitempty"`
}

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(uuid.UUID).String(), nil
	},
}

func FromCaseView(v *queries.CaseView) (*CaseResponse, error) {
	var res CaseResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{Converters: []copier.TypeConverter{uuidToString}}); err != nil {
		return nil, err
	}
	if res.Exceptions == nil {
		res.Exceptions = []rmacase.Exception{}
	}
	if len(v.Events) > 0 {
		res.Events = make([]EventResponse, len(v.Events))
		for i, ev := range v.Events {
			res.Events[i] = EventResponse{
				ID:        ev.ID.String(),
				EventType: ev.EventType,
				Summary:   ev.Summary,
				Notes:     ev.Notes,
				Metadata:  ev.Metadata,
				Actor:     ev.Actor,
				CreatedAt: ev.CreatedAt,
			}
		}
	}
	return &res, nil
}

func FromCaseViews(views []queries.CaseView) (*CaseListResponse, error) {
	cases := make([]*CaseResponse, len(views))
	for i := range views {
		res, err := FromCaseView(&views[i])
		if err != nil {
			return nil, err
		}
		cases[i] = res
	}
	return &CaseListResponse{Cases: cases, Count: len(cases)}, nil
}
