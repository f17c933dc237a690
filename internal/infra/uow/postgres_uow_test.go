//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
}

func (b *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	b := &fakeBeginner{}
	u := NewPostgresUoW(b)

	err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.Cases())
		return nil
	})

	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].committed)
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	b := &fakeBeginner{}
	u := NewPostgresUoW(b)

	calls := 0
	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, b.txs[0].rolledBack)
	assert.True(t, b.txs[1].committed)
}

func TestWithin_DoesNotRetryBusinessErrors(t *testing.T) {
	b := &fakeBeginner{}
	u := NewPostgresUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return errs.ErrCaseNotFound
	})

	assert.True(t, errs.Is(err, errs.ErrCaseNotFound))
	assert.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].rolledBack)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	b := &fakeBeginner{}
	u := NewPostgresUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Len(t, b.txs, maxRetries+1)
}

func TestCalculateBackoff(t *testing.T) {
	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * backoffBase
		got := calculateBackoff(attempt, backoffBase)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}
