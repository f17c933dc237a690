package rmacase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Lifecycle is the case state machine. Every operation validates against the case's
// current data before touching it, so a rejected call leaves the case unchanged.
type Lifecycle struct {
	clock clock.Clock
	graph *Graph
	sla   SLAPolicy
}

func NewLifecycle(clk clock.Clock, sla SLAPolicy) *Lifecycle {
	if sla == nil {
		sla = DefaultSLAPolicy()
	}
	return &Lifecycle{clock: clk, graph: DefaultGraph, sla: sla}
}

// WithGraph returns a copy of the lifecycle that validates against g.
func (l *Lifecycle) WithGraph(g *Graph) *Lifecycle {
	cp := *l
	cp.graph = g
	return &cp
}

func (l *Lifecycle) Graph() *Graph {
	return l.graph
}

func (l *Lifecycle) Now() time.Time {
	return l.clock.Now()
}

type OpenParams struct {
	Source          Source
	ShopifyReturnID *string
	Priority        Priority
	IssueSummary    string
	IssueDetails    json.RawMessage
	SerialNumber    string
	SKU             string
	Customer        Customer
	OrderReference  string
	Inbound         Tracking
	Owner           Person
	Technician      Person
	ReceivedAt      *time.Time
}

func (l *Lifecycle) Open(p OpenParams, actor string) (*Case, ServiceEvent, error) {
	if !p.Source.IsValid() {
		return nil, ServiceEvent{}, ErrInvalidSource
	}
	if p.Priority == "" {
		p.Priority = PriorityNormal
	}
	if !p.Priority.IsValid() {
		return nil, ServiceEvent{}, ErrInvalidPriority
	}

	now := l.clock.Now()
	received := now
	if p.ReceivedAt != nil {
		received = *p.ReceivedAt
	}
	c := &Case{
		ID:              uuid.New(),
		Source:          p.Source,
		ShopifyReturnID: p.ShopifyReturnID,
		Status:          StageReceived,
		Priority:        p.Priority,
		SLADueAt:        ptr.To(l.sla.DueAt(received, p.Priority)),
		Warranty:        Warranty{Status: WarrantyUnknown},
		Inbound:         p.Inbound,
		ReceivedAt:      ptr.To(received),
		Owner:           p.Owner,
		Technician:      p.Technician,
		IssueSummary:    strings.TrimSpace(p.IssueSummary),
		IssueDetails:    p.IssueDetails,
		SerialNumber:    strings.TrimSpace(p.SerialNumber),
		SKU:             strings.TrimSpace(p.SKU),
		Customer:        p.Customer,
		OrderReference:  strings.TrimSpace(p.OrderReference),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if notBlank(p.Owner.Email) || notBlank(p.Technician.Email) {
		c.AssignedAt = ptr.To(now)
	}

	summary := fmt.Sprintf("Case opened from %s", p.Source)
	ev := newEvent(c.ID, EventCreated, summary, "", actor, StatusChange{ToStatus: StageReceived, Trigger: string(p.Source)}, now)
	return c, ev, nil
}

// Transition moves the case strictly forward to target, provided target's required fields are present.
func (l *Lifecycle) Transition(c *Case, target Stage, note, actor string) (ServiceEvent, error) {
	return l.advance(c, target, note, actor, "manual")
}

func (l *Lifecycle) advance(c *Case, target Stage, note, actor, trigger string) (ServiceEvent, error) {
	if err := l.graph.Check(c, target); err != nil {
		return ServiceEvent{}, err
	}

	now := l.clock.Now()
	from := c.Status
	c.Status = target

	if node, ok := l.graph.Node(target); ok && node.Stamp != nil {
		if slot := node.Stamp(c); *slot == nil {
			*slot = ptr.To(now)
		}
	}

	if c.SLADueAt == nil {
		base := c.CreatedAt
		if c.ReceivedAt != nil {
			base = *c.ReceivedAt
		}
		c.SLADueAt = ptr.To(l.sla.DueAt(base, c.Priority))
	}
	c.UpdatedAt = now

	summary := fmt.Sprintf("Status changed from %s to %s", from, target)
	return newEvent(c.ID, EventStatusChanged, summary, strings.TrimSpace(note), actor,
		StatusChange{FromStatus: from, ToStatus: target, Trigger: trigger}, now), nil
}

type TrackingUpdate struct {
	Direction      Direction
	Carrier        string
	TrackingNumber string
	TrackingURL    string
	Status         string
}

type TrackingOutcome struct {
	Events         []ServiceEvent
	AutoAdvancedTo *Stage
}

// ApplyTracking records logistics data. An inbound delivery while received advances to
// testing; an outbound update while repaired_replaced advances to back_to_customer when
// that stage's guard passes. A guard failure here keeps the tracking data without advancing.
func (l *Lifecycle) ApplyTracking(c *Case, u TrackingUpdate, actor string) (TrackingOutcome, error) {
	if !u.Direction.IsValid() {
		return TrackingOutcome{}, ErrInvalidDirection
	}
	u.Carrier = strings.TrimSpace(u.Carrier)
	u.TrackingNumber = strings.TrimSpace(u.TrackingNumber)
	u.TrackingURL = strings.TrimSpace(u.TrackingURL)
	u.Status = strings.ToLower(strings.TrimSpace(u.Status))
	if u.Carrier == "" && u.TrackingNumber == "" && u.TrackingURL == "" && u.Status == "" {
		return TrackingOutcome{}, ErrEmptyTrackingUpdate
	}

	// work on a copy so a rejected auto-advance leaves c untouched
	work := c.Clone()
	now := l.clock.Now()
	target := &work.Inbound
	if u.Direction == DirectionOutbound {
		target = &work.Outbound
	}
	mergeTracking(target, u)
	work.UpdatedAt = now

	out := TrackingOutcome{}
	out.Events = append(out.Events, newEvent(work.ID, EventTrackingUpdated,
		fmt.Sprintf("%s tracking updated", u.Direction), "", actor,
		map[string]string{
			"direction":       string(u.Direction),
			"carrier":         target.Carrier,
			"tracking_number": target.TrackingNumber,
			"status":          target.Status,
		}, now))

	var next Stage
	switch {
	case u.Direction == DirectionInbound && u.Status == TrackingStatusDelivered && work.Status == StageReceived:
		next = StageTesting
	case u.Direction == DirectionOutbound && work.Status == StageRepairedReplaced:
		if l.graph.Check(work, StageBackToCustomer) == nil {
			next = StageBackToCustomer
		}
	}
	if next != "" {
		ev, err := l.advance(work, next, "", actor, string(u.Direction)+"_tracking")
		if err != nil {
			return TrackingOutcome{}, err
		}
		out.Events = append(out.Events, ev)
		out.AutoAdvancedTo = ptr.To(next)
	}

	if u.Direction == DirectionOutbound && u.Status == TrackingStatusDelivered &&
		work.Status == StageBackToCustomer && work.DeliveredBackAt == nil {
		work.DeliveredBackAt = ptr.To(now)
	}

	*c = *work
	return out, nil
}

func mergeTracking(t *Tracking, u TrackingUpdate) {
	if u.Carrier != "" {
		t.Carrier = u.Carrier
	}
	if u.TrackingNumber != "" {
		t.TrackingNumber = u.TrackingNumber
	}
	if u.TrackingURL != "" {
		t.TrackingURL = u.TrackingURL
	}
	if u.Status != "" {
		t.Status = u.Status
	}
}

type WarrantyDecision struct {
	Status WarrantyStatus
	Basis  string
	Notes  string
}

// DecideWarranty never changes the case status.
func (l *Lifecycle) DecideWarranty(c *Case, d WarrantyDecision, actor string) (ServiceEvent, error) {
	notes := strings.TrimSpace(d.Notes)
	if notes == "" {
		return ServiceEvent{}, errs.ErrWarrantyNotesRequired
	}
	if !d.Status.IsValid() {
		return ServiceEvent{}, ErrInvalidWarrantyStatus
	}

	now := l.clock.Now()
	c.Warranty = Warranty{
		Status:        d.Status,
		Basis:         strings.TrimSpace(d.Basis),
		DecisionNotes: notes,
		CheckedAt:     &now,
	}
	c.UpdatedAt = now

	return newEvent(c.ID, EventWarrantyDecided, fmt.Sprintf("Warranty decided: %s", d.Status), notes, actor,
		map[string]string{"warranty_status": string(d.Status), "warranty_basis": c.Warranty.Basis}, now), nil
}

// Assign replaces whichever of owner and technician is given.
func (l *Lifecycle) Assign(c *Case, owner, technician *Person, actor string) (ServiceEvent, error) {
	if !hasPerson(owner) && !hasPerson(technician) {
		return ServiceEvent{}, ErrAssigneeRequired
	}

	now := l.clock.Now()
	meta := map[string]string{}
	if hasPerson(owner) {
		c.Owner = trimPerson(*owner)
		meta["owner_email"] = c.Owner.Email
	}
	if hasPerson(technician) {
		c.Technician = trimPerson(*technician)
		meta["technician_email"] = c.Technician.Email
	}
	c.AssignedAt = ptr.To(now)
	c.UpdatedAt = now

	return newEvent(c.ID, EventAssigned, "Case assignment updated", "", actor, meta, now), nil
}

func (l *Lifecycle) AddNote(c *Case, note, actor string) (ServiceEvent, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return ServiceEvent{}, ErrEmptyNote
	}
	now := l.clock.Now()
	c.UpdatedAt = now
	return newEvent(c.ID, EventNote, "Note added", note, actor, nil, now), nil
}

func hasPerson(p *Person) bool {
	return p != nil && (notBlank(p.Name) || notBlank(p.Email))
}

func trimPerson(p Person) Person {
	return Person{Name: strings.TrimSpace(p.Name), Email: strings.ToLower(strings.TrimSpace(p.Email))}
}
