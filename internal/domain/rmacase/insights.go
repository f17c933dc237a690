package rmacase

import (
	"sort"
	"time"
)

type Exception string

const (
	ExceptionNeedsInboundTracking  Exception = "needs_inbound_tracking"
	ExceptionNeedsOutboundTracking Exception = "needs_outbound_tracking"
	ExceptionOutboundInTransit     Exception = "outbound_in_transit"
	ExceptionSLAOverdue            Exception = "sla_overdue"
)

// Exceptions derives logistics blockers from case state; nothing here is stored.
func (c *Case) Exceptions(now time.Time) []Exception {
	var out []Exception
	if c.Status == StageReceived && !c.HasField(FieldInboundTrackingNumber) {
		out = append(out, ExceptionNeedsInboundTracking)
	}
	if c.Status == StageRepairedReplaced && !c.HasField(FieldOutboundTrackingNumber) {
		out = append(out, ExceptionNeedsOutboundTracking)
	}
	if c.Status == StageBackToCustomer && c.HasField(FieldOutboundTrackingNumber) && c.DeliveredBackAt == nil {
		out = append(out, ExceptionOutboundInTransit)
	}
	if c.IsOverdue(now) {
		out = append(out, ExceptionSLAOverdue)
	}
	return out
}

func (c *Case) IsOverdue(now time.Time) bool {
	return c.SLADueAt != nil && c.SLADueAt.Before(now) && !c.Status.IsTerminal()
}

// StageEnteredAt is the created_at of the latest stage-boundary event, falling back to
// the case's creation time when the history holds none.
func (c *Case) StageEnteredAt(events []ServiceEvent) time.Time {
	entered := c.CreatedAt
	found := false
	for _, ev := range events {
		if ev.CaseID != c.ID || !ev.EventType.IsStageBoundary() {
			continue
		}
		if !found || ev.CreatedAt.After(entered) {
			entered = ev.CreatedAt
			found = true
		}
	}
	return entered
}

func (c *Case) HoursInStage(events []ServiceEvent, now time.Time) float64 {
	hours := now.Sub(c.StageEnteredAt(events)).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// TurnaroundHours is defined only for terminal cases with both end timestamps.
func (c *Case) TurnaroundHours() (float64, bool) {
	if !c.Status.IsTerminal() || c.ReceivedAt == nil || c.DeliveredBackAt == nil {
		return 0, false
	}
	return c.DeliveredBackAt.Sub(*c.ReceivedAt).Hours(), true
}

// SortEvents orders a history by created_at, keeping insertion order for ties.
func SortEvents(events []ServiceEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
}
