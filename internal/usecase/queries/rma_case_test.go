//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/queries"
	"retail-ops-core/internal/usecase/shared"
	"retail-ops-core/tests/common/memcase"
	sharedmock "retail-ops-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCaseQueries_ListComputesDerivedFields(t *testing.T) {
	store := memcase.NewCaseStore()
	c := &rmacase.Case{ID: uuid.New(), Source: rmacase.SourceManual, Status: rmacase.StageTesting, SLADueAt: at(-1), CreatedAt: *at(-30)}
	seed(t, store, c)
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Cases().AppendEvents(ctx, rmacase.ServiceEvent{ID: uuid.New(), CaseID: c.ID, EventType: rmacase.EventStatusChanged, CreatedAt: *at(-8)})
	}))

	q := queries.NewCaseQueries(store, clock.NewMockClock(now))
	views, err := q.List(context.Background(), shared.CaseFilter{Source: rmacase.SourceManual})
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.InDelta(t, 8.0, v.HoursInStage, 1e-9)
	assert.True(t, v.Overdue)
	assert.Equal(t, []rmacase.Exception{rmacase.ExceptionSLAOverdue}, v.Exceptions)
	assert.Nil(t, v.Events)

	none, err := q.List(context.Background(), shared.CaseFilter{Source: rmacase.SourceCustomerForm})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCaseQueries_GetIncludesHistory(t *testing.T) {
	store := memcase.NewCaseStore()
	c := &rmacase.Case{ID: uuid.New(), Status: rmacase.StageReceived, CreatedAt: now.Add(-time.Hour)}
	seed(t, store, c)

	q := queries.NewCaseQueries(store, clock.NewMockClock(now))
	v, err := q.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, v.Events, 1)
	assert.Equal(t, []rmacase.Exception{rmacase.ExceptionNeedsInboundTracking}, v.Exceptions)

	_, err = q.Get(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrCaseNotFound))
}

func TestCaseQueries_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockCaseReadStore(ctrl)
	store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("failed to list cases", errors.New("timeout")))

	q := queries.NewCaseQueries(store, clock.NewMockClock(now))
	_, err := q.List(context.Background(), shared.CaseFilter{})
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	assert.False(t, errs.Is(err, errs.ErrCaseNotFound))
}
