//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	rec := idempotency.NewInProgress("shopify_sync:sync-42", "fp", now, 24*time.Hour, 2*time.Minute)

	tests := []struct {
		name         string
		tag          string
		mockError    error
		wantInserted bool
		wantKind     infra.RepositoryErrorKind
	}{
		{name: "inserted", tag: "INSERT 0 1", wantInserted: true},
		{name: "key already present", tag: "INSERT 0 0", wantInserted: false},
		{name: "database error", tag: "", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, tryInsertIdempotencyKeySQL, mock.Anything).Return(tag(tt.tag), tt.mockError)

			inserted, err := NewIdempotencyRepository(db).TryInsert(context.Background(), rec)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			db.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepository_GetNotFound(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, getIdempotencyKeySQL, mock.Anything).Return(errRow(pgx.ErrNoRows))

	_, err := NewIdempotencyRepository(db).Get(context.Background(), "missing")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestIdempotencyRepository_CompleteRequiresHeldLock(t *testing.T) {
	resp := idempotency.StoredResponse{StatusCode: 201, Body: []byte(`{"id":"p-1"}`)}

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, completeIdempotencyKeySQL, mock.Anything).Return(tag("UPDATE 0"), nil).Once()
	err := NewIdempotencyRepository(db).Complete(context.Background(), "k", uuid.New(), resp)
	assert.True(t, infra.IsKind(err, infra.KindConflict))

	db = new(MockDBTX)
	db.On("Exec", mock.Anything, completeIdempotencyKeySQL, mock.Anything).Return(tag("UPDATE 1"), nil).Once()
	assert.NoError(t, NewIdempotencyRepository(db).Complete(context.Background(), "k", uuid.New(), resp))
}

func TestIdempotencyRepository_ReplaceIsConditional(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	rec := idempotency.NewInProgress("k", "fp", now, time.Hour, time.Minute)

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, replaceIdempotencyKeySQL, mock.Anything).Return(tag("UPDATE 0"), nil)

	won, err := NewIdempotencyRepository(db).Replace(context.Background(), uuid.New(), rec)
	require.NoError(t, err)
	assert.False(t, won)
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, deleteExpiredIdempotencyKeysSQL, mock.Anything).Return(tag("DELETE 3"), nil)

	n, err := NewIdempotencyRepository(db).DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
