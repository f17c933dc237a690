//go:build unit || e2e

package memcase

import (
	"context"
	"sort"
	"sync"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// CaseStore is an in-memory case store for use-case tests. It serves as unit of work, write
// repository and read store at once. Transactions are serialized by txMu and
// stage their writes until fn returns nil.
type CaseStore struct {
	txMu sync.Mutex

	mu         sync.RWMutex
	cases      map[uuid.UUID]*rmacase.Case
	byReturnID map[string]uuid.UUID
	events     []rmacase.ServiceEvent
}

var (
	_ shared.UnitOfWork    = (*CaseStore)(nil)
	_ shared.CaseReadStore = (*CaseStore)(nil)
)

func NewCaseStore() *CaseStore {
	return &CaseStore{
		cases:      make(map[uuid.UUID]*rmacase.Case),
		byReturnID: make(map[string]uuid.UUID),
	}
}

func (s *CaseStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &memTx{store: s, staged: make(map[uuid.UUID]*rmacase.Case)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range tx.staged {
		s.cases[id] = c
		if c.ShopifyReturnID != nil {
			s.byReturnID[*c.ShopifyReturnID] = id
		}
	}
	s.events = append(s.events, tx.events...)
	return nil
}

func (s *CaseStore) List(_ context.Context, filter shared.CaseFilter) ([]*rmacase.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rmacase.Case, 0, len(s.cases))
	for _, c := range s.cases {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *CaseStore) Get(_ context.Context, id uuid.UUID) (*rmacase.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, infra.WrapRepoErr("case not found", nil, infra.KindNotFound)
	}
	return c.Clone(), nil
}

func (s *CaseStore) EventsFor(_ context.Context, caseIDs ...uuid.UUID) ([]rmacase.ServiceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(caseIDs))
	for _, id := range caseIDs {
		wanted[id] = struct{}{}
	}
	var out []rmacase.ServiceEvent
	for _, ev := range s.events {
		if _, ok := wanted[ev.CaseID]; ok {
			out = append(out, ev)
		}
	}
	rmacase.SortEvents(out)
	return out, nil
}

type memTx struct {
	store  *CaseStore
	staged map[uuid.UUID]*rmacase.Case
	events []rmacase.ServiceEvent
}

func (t *memTx) Cases() shared.CaseRepository {
	return t
}

func (t *memTx) current(id uuid.UUID) (*rmacase.Case, bool) {
	if c, ok := t.staged[id]; ok {
		return c, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	c, ok := t.store.cases[id]
	return c, ok
}

func (t *memTx) Insert(_ context.Context, c *rmacase.Case) error {
	if _, ok := t.current(c.ID); ok {
		return infra.WrapRepoErr("case already exists", nil, infra.KindDuplicateKey)
	}
	if c.ShopifyReturnID != nil {
		if _, err := t.FindByShopifyReturnID(context.Background(), *c.ShopifyReturnID); err == nil {
			return infra.WrapRepoErr("shopify return already ingested", nil, infra.KindDuplicateKey)
		}
	}
	t.staged[c.ID] = c.Clone()
	return nil
}

func (t *memTx) Update(_ context.Context, c *rmacase.Case, expectedVersion int64) error {
	cur, ok := t.current(c.ID)
	if !ok {
		return infra.WrapRepoErr("case not found", nil, infra.KindNotFound)
	}
	if cur.Version != expectedVersion {
		return infra.WrapRepoErr("case version mismatch", nil, infra.KindConflict)
	}
	c.Version = expectedVersion + 1
	t.staged[c.ID] = c.Clone()
	return nil
}

func (t *memTx) FindByID(_ context.Context, id uuid.UUID) (*rmacase.Case, error) {
	c, ok := t.current(id)
	if !ok {
		return nil, infra.WrapRepoErr("case not found", nil, infra.KindNotFound)
	}
	return c.Clone(), nil
}

func (t *memTx) FindByShopifyReturnID(_ context.Context, returnID string) (*rmacase.Case, error) {
	for _, c := range t.staged {
		if c.ShopifyReturnID != nil && *c.ShopifyReturnID == returnID {
			return c.Clone(), nil
		}
	}
	t.store.mu.RLock()
	id, ok := t.store.byReturnID[returnID]
	t.store.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr("case not found", nil, infra.KindNotFound)
	}
	return t.FindByID(context.Background(), id)
}

func (t *memTx) AppendEvents(_ context.Context, events ...rmacase.ServiceEvent) error {
	t.events = append(t.events, events...)
	return nil
}
