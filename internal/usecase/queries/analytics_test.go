//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/usecase/queries"
	"retail-ops-core/internal/usecase/shared"
	"retail-ops-core/tests/common/memcase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)

func at(h int) *time.Time {
	t := now.Add(time.Duration(h) * time.Hour)
	return &t
}

func seed(t *testing.T, store *memcase.CaseStore, cases ...*rmacase.Case) {
	t.Helper()
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, c := range cases {
			if c.ID == uuid.Nil {
				c.ID = uuid.New()
			}
			if err := tx.Cases().Insert(ctx, c); err != nil {
				return err
			}
			if err := tx.Cases().AppendEvents(ctx, rmacase.ServiceEvent{
				ID: uuid.New(), CaseID: c.ID, EventType: rmacase.EventCreated, CreatedAt: c.CreatedAt,
			}); err != nil {
				return err
			}
		}
		return nil
	}))
}

func TestAnalytics_SourceScopedKPIs(t *testing.T) {
	store := memcase.NewCaseStore()
	seed(t, store,
		// manual, received without inbound tracking: one exception
		&rmacase.Case{Source: rmacase.SourceManual, Status: rmacase.StageReceived, SLADueAt: at(10), CreatedAt: *at(-5)},
		// manual, testing, clean
		&rmacase.Case{Source: rmacase.SourceManual, Status: rmacase.StageTesting, SLADueAt: at(10), CreatedAt: *at(-4)},
		// webhook cases, all with exceptions; must not leak into the manual scope
		&rmacase.Case{Source: rmacase.SourceShopifyReturnWebhook, Status: rmacase.StageReceived, SLADueAt: at(-1), CreatedAt: *at(-3)},
		&rmacase.Case{Source: rmacase.SourceShopifyReturnWebhook, Status: rmacase.StageRepairedReplaced, CreatedAt: *at(-2)},
		&rmacase.Case{Source: rmacase.SourceShopifyReturnWebhook, Status: rmacase.StageReceived, CreatedAt: *at(-1)},
	)
	q := queries.NewAnalyticsQueries(store, clock.NewMockClock(now))

	manual, err := q.Summary(context.Background(), shared.CaseFilter{Source: rmacase.SourceManual})
	require.NoError(t, err)
	assert.Equal(t, 2, manual.TotalCases)
	assert.Equal(t, 1, manual.CasesWithExceptions)
	require.NotNil(t, manual.ExceptionRate)
	assert.InDelta(t, 0.5, *manual.ExceptionRate, 1e-9)
	assert.Equal(t, 0, manual.OverdueCases)

	all, err := q.Summary(context.Background(), shared.CaseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalCases)
	assert.Equal(t, 4, all.CasesWithExceptions)
	assert.Equal(t, 1, all.OverdueCases)
	assert.Equal(t, 1, all.ExceptionCounts[rmacase.ExceptionNeedsOutboundTracking])
}

func TestSummarize_KPIs(t *testing.T) {
	tech := rmacase.Person{Name: "Kai", Email: "kai@example.com"}
	cases := []*rmacase.Case{
		{ID: uuid.New(), Status: rmacase.StageBackToCustomer, ReceivedAt: at(-100), DeliveredBackAt: at(-52), Outbound: rmacase.Tracking{TrackingNumber: "1"},
			Warranty: rmacase.Warranty{Status: rmacase.WarrantyIn}, SerialNumber: "sn-1"},
		{ID: uuid.New(), Status: rmacase.StageBackToCustomer, ReceivedAt: at(-50), DeliveredBackAt: at(-26), Outbound: rmacase.Tracking{TrackingNumber: "2"},
			Warranty: rmacase.Warranty{Status: rmacase.WarrantyOut}, SerialNumber: " SN-1 "},
		{ID: uuid.New(), Status: rmacase.StageBackToCustomer, ReceivedAt: at(-10), Outbound: rmacase.Tracking{TrackingNumber: "3"}},
		{ID: uuid.New(), Status: rmacase.StageTesting, Technician: tech, Warranty: rmacase.Warranty{Status: rmacase.WarrantyIn}, SerialNumber: "SN-2", CreatedAt: *at(-6)},
		{ID: uuid.New(), Status: rmacase.StageSentToManufacturer, Technician: rmacase.Person{Email: "KAI@example.com"}, SerialNumber: "SN-1", CreatedAt: *at(-4)},
		{ID: uuid.New(), Status: rmacase.StageTesting, Technician: rmacase.Person{Email: "lee@example.com"}, CreatedAt: *at(-2)},
		{ID: uuid.New(), Status: rmacase.StageReceived, Inbound: rmacase.Tracking{TrackingNumber: "x"}, CreatedAt: *at(-2)},
	}

	v := queries.Summarize(shared.CaseFilter{}, cases, nil, now)

	assert.Equal(t, 7, v.TotalCases)
	assert.Equal(t, 4, v.OpenCases)
	assert.Equal(t, 3, v.StageCounts[rmacase.StageBackToCustomer])

	assert.Equal(t, 3, v.WarrantyDecided)
	require.NotNil(t, v.WarrantyHitRate)
	assert.InDelta(t, 2.0/3.0, *v.WarrantyHitRate, 1e-9)

	assert.Equal(t, 2, v.TurnaroundSamples)
	require.NotNil(t, v.AvgTurnaroundHours)
	assert.InDelta(t, 36.0, *v.AvgTurnaroundHours, 1e-9)

	assert.Equal(t, 1, v.ExceptionCounts[rmacase.ExceptionOutboundInTransit])

	assert.Equal(t, []queries.TechnicianLoad{
		{Email: "kai@example.com", Name: "Kai", OpenCases: 2},
		{Email: "lee@example.com", OpenCases: 1},
	}, v.TechnicianLoad)
	assert.Equal(t, 1, v.UnassignedOpenCases)

	require.Len(t, v.RepeatSerials, 1)
	assert.Equal(t, "SN-1", v.RepeatSerials[0].SerialNumber)
	assert.Equal(t, 3, v.RepeatSerials[0].CaseCount)

	require.NotNil(t, v.AvgHoursInStage)
	assert.InDelta(t, (6.0+4.0+2.0+2.0)/4.0, *v.AvgHoursInStage, 1e-9)
}

func TestSummarize_EmptyScopeHasNilRates(t *testing.T) {
	v := queries.Summarize(shared.CaseFilter{Priority: rmacase.PriorityUrgent}, nil, nil, now)
	assert.Equal(t, 0, v.TotalCases)
	assert.Nil(t, v.ExceptionRate)
	assert.Nil(t, v.WarrantyHitRate)
	assert.Nil(t, v.AvgTurnaroundHours)
	assert.NotNil(t, v.RepeatSerials)
}
