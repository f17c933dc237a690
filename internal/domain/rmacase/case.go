package rmacase

import (
	"encoding/json"
	"strings"
	"time"

	"retail-ops-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

type Tracking struct {
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	TrackingURL    string `json:"tracking_url,omitempty"`
	Status         string `json:"status,omitempty"`
}

type Person struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Warranty struct {
	Status        WarrantyStatus `json:"status"`
	Basis         string         `json:"basis,omitempty"`
	DecisionNotes string         `json:"decision_notes,omitempty"`
	CheckedAt     *time.Time     `json:"checked_at,omitempty"`
}

// Case is an RMA service case. It is mutated only through Lifecycle and is never deleted.
type Case struct {
	ID              uuid.UUID
	Source          Source
	ShopifyReturnID *string
	Status          Stage
	Priority        Priority
	SLADueAt        *time.Time

	Warranty Warranty

	Inbound  Tracking
	Outbound Tracking

	ReceivedAt      *time.Time
	InspectedAt     *time.Time
	ShippedBackAt   *time.Time
	DeliveredBackAt *time.Time

	Owner      Person
	Technician Person
	AssignedAt *time.Time

	IssueSummary   string
	IssueDetails   json.RawMessage
	SerialNumber   string
	SKU            string
	Customer       Customer
	OrderReference string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Case) HasField(f Field) bool {
	switch f {
	case FieldOutboundCarrier:
		return notBlank(c.Outbound.Carrier)
	case FieldOutboundTrackingNumber:
		return notBlank(c.Outbound.TrackingNumber)
	case FieldInboundTrackingNumber:
		return notBlank(c.Inbound.TrackingNumber)
	case FieldSerialNumber:
		return notBlank(c.SerialNumber)
	case FieldTechnicianEmail:
		return notBlank(c.Technician.Email)
	default:
		return false
	}
}

func (c *Case) IsOpen() bool {
	return !c.Status.IsTerminal()
}

func (c *Case) Clone() *Case {
	cp := *c
	if c.ShopifyReturnID != nil {
		cp.ShopifyReturnID = ptr.To(*c.ShopifyReturnID)
	}
	cp.SLADueAt = cloneTime(c.SLADueAt)
	cp.Warranty.CheckedAt = cloneTime(c.Warranty.CheckedAt)
	cp.ReceivedAt = cloneTime(c.ReceivedAt)
	cp.InspectedAt = cloneTime(c.InspectedAt)
	cp.ShippedBackAt = cloneTime(c.ShippedBackAt)
	cp.DeliveredBackAt = cloneTime(c.DeliveredBackAt)
	cp.AssignedAt = cloneTime(c.AssignedAt)
	if c.IssueDetails != nil {
		cp.IssueDetails = append(json.RawMessage(nil), c.IssueDetails...)
	}
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return ptr.To(*t)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
