//go:build unit

package rmacase_test

import (
	"testing"
	"time"

	"retail-ops-core/internal/domain/rmacase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCase_Exceptions(t *testing.T) {
	now := t0
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	testCases := []struct {
		name   string
		c      rmacase.Case
		expect []rmacase.Exception
	}{
		{
			name:   "received without inbound tracking",
			c:      rmacase.Case{Status: rmacase.StageReceived, SLADueAt: &future},
			expect: []rmacase.Exception{rmacase.ExceptionNeedsInboundTracking},
		},
		{
			name: "received with inbound tracking",
			c:    rmacase.Case{Status: rmacase.StageReceived, Inbound: rmacase.Tracking{TrackingNumber: "1Z"}, SLADueAt: &future},
		},
		{
			name:   "repaired without outbound tracking and overdue",
			c:      rmacase.Case{Status: rmacase.StageRepairedReplaced, SLADueAt: &past},
			expect: []rmacase.Exception{rmacase.ExceptionNeedsOutboundTracking, rmacase.ExceptionSLAOverdue},
		},
		{
			name:   "shipped back, not delivered",
			c:      rmacase.Case{Status: rmacase.StageBackToCustomer, Outbound: rmacase.Tracking{TrackingNumber: "1Z"}, SLADueAt: &past},
			expect: []rmacase.Exception{rmacase.ExceptionOutboundInTransit},
		},
		{
			name: "delivered back",
			c:    rmacase.Case{Status: rmacase.StageBackToCustomer, Outbound: rmacase.Tracking{TrackingNumber: "1Z"}, DeliveredBackAt: &past},
		},
		{
			name: "testing with no sla",
			c:    rmacase.Case{Status: rmacase.StageTesting},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.c.Exceptions(now))
		})
	}
}

func TestCase_HoursInStage(t *testing.T) {
	id := uuid.New()
	c := rmacase.Case{ID: id, CreatedAt: t0}
	now := t0.Add(50 * time.Hour)

	t.Run("no events falls back to creation", func(t *testing.T) {
		assert.InDelta(t, 50.0, c.HoursInStage(nil, now), 0.0001)
	})

	t.Run("latest stage change wins, notes ignored", func(t *testing.T) {
		events := []rmacase.ServiceEvent{
			{CaseID: id, EventType: rmacase.EventCreated, CreatedAt: t0},
			{CaseID: id, EventType: rmacase.EventStatusChanged, CreatedAt: t0.Add(10 * time.Hour)},
			{CaseID: id, EventType: rmacase.EventStatusChanged, CreatedAt: t0.Add(20 * time.Hour)},
			{CaseID: id, EventType: rmacase.EventNote, CreatedAt: t0.Add(40 * time.Hour)},
			{CaseID: uuid.New(), EventType: rmacase.EventStatusChanged, CreatedAt: t0.Add(45 * time.Hour)},
		}
		assert.InDelta(t, 30.0, c.HoursInStage(events, now), 0.0001)
	})
}

func TestCase_TurnaroundHours(t *testing.T) {
	received := t0
	delivered := t0.Add(36 * time.Hour)

	done := rmacase.Case{Status: rmacase.StageBackToCustomer, ReceivedAt: &received, DeliveredBackAt: &delivered}
	h, ok := done.TurnaroundHours()
	assert.True(t, ok)
	assert.InDelta(t, 36.0, h, 0.0001)

	open := rmacase.Case{Status: rmacase.StageTesting, ReceivedAt: &received, DeliveredBackAt: &delivered}
	_, ok = open.TurnaroundHours()
	assert.False(t, ok)
}
