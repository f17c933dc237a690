package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "idem:"

// IdempotencyStore keeps one JSON value per scoped key with the record's expiry as
// the redis TTL. Conditional updates run under WATCH so a lost race aborts the
// transaction instead of overwriting another holder's lock.
type IdempotencyStore struct {
	client redis.UniversalClient
}

var _ shared.IdempotencyStore = (*IdempotencyStore)(nil)

func NewIdempotencyStore(client redis.UniversalClient) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type storedRecord struct {
	Key         string                      `json:"key"`
	Fingerprint string                      `json:"fingerprint"`
	State       idempotency.State           `json:"state"`
	Token       uuid.UUID                   `json:"token"`
	Response    *idempotency.StoredResponse `json:"response,omitempty"`
	LockedUntil time.Time                   `json:"locked_until"`
	CreatedAt   time.Time                   `json:"created_at"`
	ExpiresAt   time.Time                   `json:"expires_at"`
}

func toStored(r *idempotency.Record) storedRecord {
	return storedRecord{
		Key:         r.Key,
		Fingerprint: r.Fingerprint,
		State:       r.State,
		Token:       r.Token,
		Response:    r.Response,
		LockedUntil: r.LockedUntil,
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
	}
}

func (s storedRecord) toRecord() *idempotency.Record {
	return &idempotency.Record{
		Key:         s.Key,
		Fingerprint: s.Fingerprint,
		State:       s.State,
		Token:       s.Token,
		Response:    s.Response,
		LockedUntil: s.LockedUntil.UTC(),
		CreatedAt:   s.CreatedAt.UTC(),
		ExpiresAt:   s.ExpiresAt.UTC(),
	}
}

func (s *IdempotencyStore) TryInsert(ctx context.Context, rec *idempotency.Record) (bool, error) {
	raw, err := json.Marshal(toStored(rec))
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode idempotency record", err)
	}

	err = s.client.SetArgs(ctx, idempotencyKeyPrefix+rec.Key, raw, redis.SetArgs{
		Mode:     "NX",
		ExpireAt: rec.ExpiresAt,
	}).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return true, nil
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*idempotency.Record, error) {
	rec, err := s.load(ctx, s.client, key)
	if err != nil {
		return nil, err
	}
	return rec.toRecord(), nil
}

func (s *IdempotencyStore) Replace(ctx context.Context, expectedToken uuid.UUID, rec *idempotency.Record) (bool, error) {
	raw, err := json.Marshal(toStored(rec))
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode idempotency record", err)
	}

	won := false
	err = s.watch(ctx, rec.Key, func(tx *redis.Tx, cur *storedRecord) error {
		if cur == nil || cur.Token != expectedToken {
			return nil
		}
		_, err := tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.SetArgs(ctx, idempotencyKeyPrefix+rec.Key, raw, redis.SetArgs{ExpireAt: rec.ExpiresAt})
			return nil
		})
		if err == nil {
			won = true
		}
		return err
	})
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to replace idempotency key", err)
	}
	return won, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, token uuid.UUID, resp idempotency.StoredResponse) error {
	held := false
	err := s.watch(ctx, key, func(tx *redis.Tx, cur *storedRecord) error {
		if cur == nil || cur.Token != token || cur.State != idempotency.StateInProgress {
			return nil
		}
		cur.State = idempotency.StateCompleted
		cur.Response = &resp
		raw, err := json.Marshal(cur)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.SetArgs(ctx, idempotencyKeyPrefix+key, raw, redis.SetArgs{KeepTTL: true})
			return nil
		})
		if err == nil {
			held = true
		}
		return err
	})
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if !held {
		return infra.WrapRepoErr("idempotency lock no longer held", nil, infra.KindConflict)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string, token uuid.UUID) error {
	err := s.watch(ctx, key, func(tx *redis.Tx, cur *storedRecord) error {
		if cur == nil || cur.Token != token || cur.State != idempotency.StateInProgress {
			return nil
		}
		_, err := tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Del(ctx, idempotencyKeyPrefix+key)
			return nil
		})
		return err
	})
	// A lost race means someone else now owns the key; there is nothing to release.
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

// DeleteExpired is a no-op: redis evicts records at their TTL.
func (s *IdempotencyStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *IdempotencyStore) watch(ctx context.Context, key string, fn func(tx *redis.Tx, cur *storedRecord) error) error {
	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := s.load(ctx, tx, key)
		if infra.IsKind(err, infra.KindNotFound) {
			return fn(tx, nil)
		}
		if err != nil {
			return err
		}
		return fn(tx, cur)
	}, idempotencyKeyPrefix+key)
}

func (s *IdempotencyStore) load(ctx context.Context, c getter, key string) (*storedRecord, error) {
	raw, err := c.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	var rec storedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode idempotency record", err)
	}
	return &rec, nil
}
