package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/infra/db"
	"retail-ops-core/internal/pkg/pgconv"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, fingerprint, state, lock_token, locked_until, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (key) DO NOTHING`

	getIdempotencyKeySQL = `
SELECT key, fingerprint, state, lock_token, response_status, response_headers, response_body,
       locked_until, created_at, expires_at
FROM idempotency_keys
WHERE key = $1`

	replaceIdempotencyKeySQL = `
UPDATE idempotency_keys
SET fingerprint = $3, state = $4, lock_token = $5, response_status = NULL, response_headers = NULL,
    response_body = NULL, locked_until = $6, created_at = $7, expires_at = $8
WHERE key = $1 AND lock_token = $2`

	completeIdempotencyKeySQL = `
UPDATE idempotency_keys
SET state = 'completed', response_status = $3, response_headers = $4, response_body = $5
WHERE key = $1 AND lock_token = $2 AND state = 'in_progress'`

	releaseIdempotencyKeySQL = `
DELETE FROM idempotency_keys
WHERE key = $1 AND lock_token = $2 AND state = 'in_progress'`

	deleteExpiredIdempotencyKeysSQL = `
DELETE FROM idempotency_keys
WHERE expires_at <= $1`
)

// IdempotencyRepository keeps every state change a single conditional statement, so
// concurrent replicas race on the primary key and the lock token instead of on reads.
type IdempotencyRepository struct {
	db db.DBTX
}

var _ shared.IdempotencyStore = (*IdempotencyRepository)(nil)

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec *idempotency.Record) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencyKeySQL,
		rec.Key,
		rec.Fingerprint,
		rec.State.String(),
		pgconv.UUIDToPgtype(rec.Token),
		pgconv.TimeToPgtype(rec.LockedUntil),
		pgconv.TimeToPgtype(rec.CreatedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*idempotency.Record, error) {
	var (
		rec         idempotency.Record
		state       string
		token       pgtype.UUID
		status      pgtype.Int4
		headers     []byte
		body        []byte
		lockedUntil pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		expiresAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencyKeySQL, key).Scan(
		&rec.Key, &rec.Fingerprint, &state, &token, &status, &headers, &body,
		&lockedUntil, &createdAt, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	rec.State = idempotency.State(state)
	rec.Token = uuid.UUID(token.Bytes)
	rec.LockedUntil = lockedUntil.Time.UTC()
	rec.CreatedAt = createdAt.Time.UTC()
	rec.ExpiresAt = expiresAt.Time.UTC()

	if code := pgconv.Int32PtrFromPgtype(status); code != nil {
		resp := &idempotency.StoredResponse{StatusCode: int(*code), Body: body}
		if len(headers) > 0 {
			var h http.Header
			if err := json.Unmarshal(headers, &h); err != nil {
				return nil, infra.WrapRepoErr("failed to decode stored response headers", err)
			}
			resp.Headers = h
		}
		rec.Response = resp
	}

	return &rec, nil
}

func (r *IdempotencyRepository) Replace(ctx context.Context, expectedToken uuid.UUID, rec *idempotency.Record) (bool, error) {
	tag, err := r.db.Exec(ctx, replaceIdempotencyKeySQL,
		rec.Key,
		pgconv.UUIDToPgtype(expectedToken),
		rec.Fingerprint,
		rec.State.String(),
		pgconv.UUIDToPgtype(rec.Token),
		pgconv.TimeToPgtype(rec.LockedUntil),
		pgconv.TimeToPgtype(rec.CreatedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to replace idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key string, token uuid.UUID, resp idempotency.StoredResponse) error {
	var headers []byte
	if len(resp.Headers) > 0 {
		raw, err := json.Marshal(resp.Headers)
		if err != nil {
			return infra.WrapRepoErr("failed to encode response headers", err)
		}
		headers = raw
	}

	tag, err := r.db.Exec(ctx, completeIdempotencyKeySQL,
		key, pgconv.UUIDToPgtype(token), int32(resp.StatusCode), headers, resp.Body)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency lock no longer held", nil, infra.KindConflict)
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, key string, token uuid.UUID) error {
	if _, err := r.db.Exec(ctx, releaseIdempotencyKeySQL, key, pgconv.UUIDToPgtype(token)); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
