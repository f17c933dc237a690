//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	reqdto "retail-ops-core/internal/handler/dto/request"
	"retail-ops-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type CaseBuilder struct {
	ID             uuid.UUID
	Source         rmacase.Source
	Status         rmacase.Stage
	Priority       rmacase.Priority
	IssueSummary   string
	SerialNumber   string
	SKU            string
	Customer       rmacase.Customer
	OrderReference string
	Inbound        rmacase.Tracking
	Outbound       rmacase.Tracking
	Technician     rmacase.Person
	Warranty       rmacase.Warranty
	ReceivedAt     time.Time
	Version        int64
	CreatedAt      time.Time
}

func NewCaseBuilder() *CaseBuilder {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return &CaseBuilder{
		ID:             uuid.New(),
		Source:         rmacase.SourceManual,
		Status:         rmacase.StageReceived,
		Priority:       rmacase.PriorityNormal,
		IssueSummary:   "Unit does not power on",
		SerialNumber:   "SN-4411",
		SKU:            "AMP-200",
		Customer:       rmacase.Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		OrderReference: "#1042",
		Inbound:        rmacase.Tracking{Carrier: "UPS", TrackingNumber: "1Z999"},
		Warranty:       rmacase.Warranty{Status: rmacase.WarrantyUnknown},
		ReceivedAt:     now,
		Version:        1,
		CreatedAt:      now,
	}
}

func (b *CaseBuilder) With(mutate func(*CaseBuilder)) *CaseBuilder {
	mutate(b)
	return b
}

func (b *CaseBuilder) BuildDomain() *rmacase.Case {
	received := b.ReceivedAt
	due := received.Add(rmacase.DefaultSLAPolicy()[b.Priority])
	return &rmacase.Case{
		ID:             b.ID,
		Source:         b.Source,
		Status:         b.Status,
		Priority:       b.Priority,
		SLADueAt:       &due,
		Warranty:       b.Warranty,
		Inbound:        b.Inbound,
		Outbound:       b.Outbound,
		ReceivedAt:     &received,
		Technician:     b.Technician,
		IssueSummary:   b.IssueSummary,
		IssueDetails:   json.RawMessage(`{"reported":"no power"}`),
		SerialNumber:   b.SerialNumber,
		SKU:            b.SKU,
		Customer:       b.Customer,
		OrderReference: b.OrderReference,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *CaseBuilder) BuildView() *queries.CaseView {
	c := b.BuildDomain()
	return &queries.CaseView{
		ID:             c.ID,
		Source:         c.Source,
		Status:         c.Status,
		Priority:       c.Priority,
		SLADueAt:       c.SLADueAt,
		Warranty:       c.Warranty,
		Inbound:        c.Inbound,
		Outbound:       c.Outbound,
		ReceivedAt:     c.ReceivedAt,
		Technician:     c.Technician,
		IssueSummary:   c.IssueSummary,
		IssueDetails:   c.IssueDetails,
		SerialNumber:   c.SerialNumber,
		SKU:            c.SKU,
		Customer:       c.Customer,
		OrderReference: c.OrderReference,
		Version:        c.Version,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		HoursInStage:   2,
		Exceptions:     []rmacase.Exception{},
		Events: []rmacase.ServiceEvent{{
			ID:        uuid.New(),
			CaseID:    c.ID,
			EventType: rmacase.EventCreated,
			Summary:   "Case opened from " + string(c.Source),
			Actor:     "staff:ops@example.com",
			CreatedAt: c.CreatedAt,
		}},
	}
}

func (b *CaseBuilder) BuildCreateRequestDTO() reqdto.CreateCaseRequest {
	priority := string(b.Priority)
	received := b.ReceivedAt
	return reqdto.CreateCaseRequest{
		Priority:       &priority,
		IssueSummary:   b.IssueSummary,
		SerialNumber:   b.SerialNumber,
		SKU:            b.SKU,
		Customer:       reqdto.CustomerRequest(b.Customer),
		OrderReference: b.OrderReference,
		Inbound: &reqdto.TrackingRequest{
			Carrier:        b.Inbound.Carrier,
			TrackingNumber: b.Inbound.TrackingNumber,
		},
		ReceivedAt: &received,
	}
}

func (b *CaseBuilder) BuildCustomerFormDTO() reqdto.CustomerFormRequest {
	return reqdto.CustomerFormRequest{
		Name:                  b.Customer.Name,
		Email:                 b.Customer.Email,
		OrderReference:        b.OrderReference,
		SKU:                   b.SKU,
		SerialNumber:          b.SerialNumber,
		IssueSummary:          b.IssueSummary,
		IssueDetails:          "Stopped working after a week",
		InboundCarrier:        b.Inbound.Carrier,
		InboundTrackingNumber: b.Inbound.TrackingNumber,
	}
}
