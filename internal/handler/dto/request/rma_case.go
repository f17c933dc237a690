package request

import (
	"encoding/json"
	"strings"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/patch"
	"retail-ops-core/internal/pkg/ptr"
	"retail-ops-core/internal/usecase/commands"
)

type PersonRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Email string `json:"email" binding:"omitempty,email,max=320"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Email string `json:"email" binding:"omitempty,email,max=320"`
	Phone string `json:"phone" binding:"max=50"`
}

type TrackingRequest struct {
	Carrier        string `json:"carrier" binding:"max=100"`
	TrackingNumber string `json:"tracking_number" binding:"max=200"`
	TrackingURL    string `json:"tracking_url" binding:"omitempty,url,max=2000"`
}

type CreateCaseRequest struct {
	Priority       *string          `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	IssueSummary   string           `json:"issue_summary" binding:"required,max=500"`
	IssueDetails   json.RawMessage  `json:"issue_details" swaggertype:"object"`
	SerialNumber   string           `json:"serial_number" binding:"max=200"`
	SKU            string           `json:"sku" binding:"max=200"`
	Customer       CustomerRequest  `json:"customer"`
	OrderReference string           `json:"order_reference" binding:"max=200"`
	Inbound        *TrackingRequest `json:"inbound"`
	Owner          *PersonRequest   `json:"owner"`
	Technician     *PersonRequest   `json:"technician"`
	ReceivedAt     *time.Time       `json:"received_at"`
}

func (r *CreateCaseRequest) ToInput() commands.CreateCaseInput {
	in := commands.CreateCaseInput{
		Priority:       rmacase.Priority(patch.CoalesceString(r.Priority, string(rmacase.PriorityNormal))),
		IssueSummary:   r.IssueSummary,
		IssueDetails:   r.IssueDetails,
		SerialNumber:   r.SerialNumber,
		SKU:            r.SKU,
		Customer:       rmacase.Customer(r.Customer),
		OrderReference: r.OrderReference,
		ReceivedAt:     r.ReceivedAt,
	}
	if r.Inbound != nil {
		in.Inbound = rmacase.Tracking{
			Carrier:        r.Inbound.Carrier,
			TrackingNumber: r.Inbound.TrackingNumber,
			TrackingURL:    r.Inbound.TrackingURL,
		}
	}
	if r.Owner != nil {
		in.Owner = r.Owner.toPerson()
	}
	if r.Technician != nil {
		in.Technician = r.Technician.toPerson()
	}
	return in
}

// Target stage validity is decided by the lifecycle so unknown stages get the same
// structured rejection as backward moves.
type TransitionRequest struct {
	Status          string `json:"status" binding:"required"`
	Note            string `json:"note" binding:"max=2000"`
	ExpectedVersion *int64 `json:"expected_version" binding:"omitempty,min=1"`
}

func (r *TransitionRequest) ToInput() commands.TransitionInput {
	return commands.TransitionInput{
		Status:          rmacase.Stage(strings.TrimSpace(r.Status)),
		Note:            r.Note,
		ExpectedVersion: r.ExpectedVersion,
	}
}

type TrackingUpdateRequest struct {
	Direction       string `json:"direction" binding:"required,oneof=inbound outbound"`
	Carrier         string `json:"carrier" binding:"max=100"`
	TrackingNumber  string `json:"tracking_number" binding:"max=200"`
	TrackingURL     string `json:"tracking_url" binding:"omitempty,url,max=2000"`
	Status          string `json:"status" binding:"max=100"`
	ExpectedVersion *int64 `json:"expected_version" binding:"omitempty,min=1"`
}

func (r *TrackingUpdateRequest) ToInput() commands.TrackingInput {
	return commands.TrackingInput{
		Update: rmacase.TrackingUpdate{
			Direction:      rmacase.Direction(r.Direction),
			Carrier:        r.Carrier,
			TrackingNumber: r.TrackingNumber,
			TrackingURL:    r.TrackingURL,
			Status:         strings.ToLower(strings.TrimSpace(r.Status)),
		},
		ExpectedVersion: r.ExpectedVersion,
	}
}

type WarrantyDecisionRequest struct {
	Status          string `json:"status" binding:"required,oneof=in_warranty out_of_warranty unknown"`
	Basis           string `json:"basis" binding:"max=500"`
	Notes           string `json:"notes" binding:"max=4000"`
	ExpectedVersion *int64 `json:"expected_version" binding:"omitempty,min=1"`
}

func (r *WarrantyDecisionRequest) ToInput() commands.WarrantyInput {
	return commands.WarrantyInput{
		Decision: rmacase.WarrantyDecision{
			Status: rmacase.WarrantyStatus(r.Status),
			Basis:  r.Basis,
			Notes:  r.Notes,
		},
		ExpectedVersion: r.ExpectedVersion,
	}
}

type AssignRequest struct {
	Owner           *PersonRequest `json:"owner"`
	Technician      *PersonRequest `json:"technician"`
	ExpectedVersion *int64         `json:"expected_version" binding:"omitempty,min=1"`
}

func (r *AssignRequest) ToInput() commands.AssignInput {
	in := commands.AssignInput{ExpectedVersion: r.ExpectedVersion}
	if r.Owner != nil {
		in.Owner = ptr.To(r.Owner.toPerson())
	}
	if r.Technician != nil {
		in.Technician = ptr.To(r.Technician.toPerson())
	}
	return in
}

type NoteRequest struct {
	Note string `json:"note" binding:"required,max=4000"`
}

func (p *PersonRequest) toPerson() rmacase.Person {
	return rmacase.Person{Name: p.Name, Email: p.Email}
}
