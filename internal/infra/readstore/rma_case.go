package readstore

import (
	"context"
	"fmt"
	"strings"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/infra/db"
	"retail-ops-core/internal/infra/repository/converter"
	"retail-ops-core/internal/pkg/pgconv"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	getCaseSQL = `SELECT ` + converter.CaseColumns + ` FROM rma_cases WHERE id = $1`

	eventsForCasesSQL = `SELECT ` + converter.EventColumns + `
FROM rma_service_events
WHERE case_id = ANY($1)
ORDER BY created_at, seq`
)

type CaseReadStore struct {
	db db.DBTX
}

var _ shared.CaseReadStore = (*CaseReadStore)(nil)

func NewCaseReadStore(dbtx db.DBTX) *CaseReadStore {
	return &CaseReadStore{db: dbtx}
}

func (r *CaseReadStore) List(ctx context.Context, filter shared.CaseFilter) ([]*rmacase.Case, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cases", err)
	}
	cases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*rmacase.Case, error) {
		return converter.ScanCase(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cases", err)
	}
	return cases, nil
}

func (r *CaseReadStore) Get(ctx context.Context, id uuid.UUID) (*rmacase.Case, error) {
	c, err := converter.ScanCase(r.db.QueryRow(ctx, getCaseSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get case", err)
	}
	return c, nil
}

func (r *CaseReadStore) EventsFor(ctx context.Context, caseIDs ...uuid.UUID) ([]rmacase.ServiceEvent, error) {
	if len(caseIDs) == 0 {
		return nil, nil
	}
	ids := make([]pgtype.UUID, len(caseIDs))
	for i, id := range caseIDs {
		ids[i] = pgconv.UUIDToPgtype(id)
	}
	rows, err := r.db.Query(ctx, eventsForCasesSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service events", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rmacase.ServiceEvent, error) {
		return converter.ScanEvent(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan service events", err)
	}
	return events, nil
}

// buildListQuery mirrors shared.CaseFilter.Matches in SQL.
func buildListQuery(filter shared.CaseFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.Source != "" {
		add("source = $%d", string(filter.Source))
	}
	if filter.WarrantyStatus != "" {
		add("warranty_status = $%d", string(filter.WarrantyStatus))
	}
	if filter.Priority != "" {
		add("priority = $%d", string(filter.Priority))
	}
	if email := strings.TrimSpace(filter.TechnicianEmail); email != "" {
		add("lower(technician_email) = lower($%d)", email)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(converter.CaseColumns)
	b.WriteString(" FROM rma_cases")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id")
	return b.String(), args
}
