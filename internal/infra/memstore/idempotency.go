package memstore

import (
	"bytes"
	"context"
	"sync"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"

	"github.com/google/uuid"
)

// IdempotencyStore keeps records in process memory. A single mutex makes every
// operation atomic, so it is only correct for a single replica.
type IdempotencyStore struct {
	mu      sync.Mutex
	records map[string]*idempotency.Record
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{records: make(map[string]*idempotency.Record)}
}

func (s *IdempotencyStore) TryInsert(_ context.Context, rec *idempotency.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Key]; ok {
		return false, nil
	}
	s.records[rec.Key] = cloneRecord(rec)
	return true, nil
}

func (s *IdempotencyStore) Get(_ context.Context, key string) (*idempotency.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return cloneRecord(rec), nil
}

func (s *IdempotencyStore) Replace(_ context.Context, expectedToken uuid.UUID, rec *idempotency.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.records[rec.Key]
	if !ok || cur.Token != expectedToken {
		return false, nil
	}
	s.records[rec.Key] = cloneRecord(rec)
	return true, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, key string, token uuid.UUID, resp idempotency.StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.records[key]
	if !ok || cur.Token != token || cur.State != idempotency.StateInProgress {
		return infra.WrapRepoErr("idempotency lock no longer held", nil, infra.KindConflict)
	}
	cur.State = idempotency.StateCompleted
	cur.Response = cloneResponse(&resp)
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, key string, token uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.records[key]; ok && cur.Token == token && cur.State == idempotency.StateInProgress {
		delete(s.records, key)
	}
	return nil
}

func (s *IdempotencyStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, rec := range s.records {
		if rec.IsExpired(now) {
			delete(s.records, key)
			n++
		}
	}
	return n, nil
}

func cloneRecord(r *idempotency.Record) *idempotency.Record {
	out := *r
	out.Response = cloneResponse(r.Response)
	return &out
}

func cloneResponse(r *idempotency.StoredResponse) *idempotency.StoredResponse {
	if r == nil {
		return nil
	}
	return &idempotency.StoredResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers.Clone(),
		Body:       bytes.Clone(r.Body),
	}
}
