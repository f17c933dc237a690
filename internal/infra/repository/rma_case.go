package repository

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
)

var (
	insertCaseSQL = fmt.Sprintf(`INSERT INTO rma_cases (%s) VALUES (%s)`,
		converter.CaseColumns, placeholders(1, 38))

	// Row lock keeps concurrent writers on one case serialized for the rest of the tx.
	findCaseByIDSQL = `SELECT ` + converter.CaseColumns + ` FROM rma_cases WHERE id = $1 FOR UPDATE`

	findCaseByReturnIDSQL = `SELECT ` + converter.CaseColumns + ` FROM rma_cases WHERE shopify_return_id = $1 FOR UPDATE`

	updateCaseSQL = `
UPDATE rma_cases SET
    status = $3, priority = $4, sla_due_at = $5,
    warranty_status = $6, warranty_basis = $7, warranty_notes = $8, warranty_checked_at = $9,
    inbound_carrier = $10, inbound_tracking_number = $11, inbound_tracking_url = $12, inbound_status = $13,
    outbound_carrier = $14, outbound_tracking_number = $15, outbound_tracking_url = $16, outbound_status = $17,
    received_at = $18, inspected_at = $19, shipped_back_at = $20, delivered_back_at = $21,
    owner_name = $22, owner_email = $23, technician_name = $24, technician_email = $25, assigned_at = $26,
    issue_summary = $27, serial_number = $28, sku = $29,
    customer_name = $30, customer_email = $31, customer_phone = $32, order_reference = $33,
    updated_at = $34, version = version + 1
WHERE id = $1 AND version = $2`

	insertEventSQL = fmt.Sprintf(`INSERT INTO rma_service_events (%s) VALUES (%s)`,
		converter.EventColumns, placeholders(1, 8))
)

type CaseRepository struct {
	db db.DBTX
}

var _ shared.CaseRepository = (*CaseRepository)(nil)

func NewCaseRepository(dbtx db.DBTX) *CaseRepository {
	return &CaseRepository{db: dbtx}
}

func (r *CaseRepository) Insert(ctx context.Context, c *rmacase.Case) error {
	if _, err := r.db.Exec(ctx, insertCaseSQL, converter.CaseArgs(c)...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("case already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert case", err)
	}
	return nil
}

func (r *CaseRepository) Update(ctx context.Context, c *rmacase.Case, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, updateCaseSQL,
		pgconv.UUIDToPgtype(c.ID), expectedVersion,
		string(c.Status), string(c.Priority), pgconv.TimePtrToPgtype(c.SLADueAt),
		string(c.Warranty.Status), c.Warranty.Basis, c.Warranty.DecisionNotes, pgconv.TimePtrToPgtype(c.Warranty.CheckedAt),
		c.Inbound.Carrier, c.Inbound.TrackingNumber, c.Inbound.TrackingURL, c.Inbound.Status,
		c.Outbound.Carrier, c.Outbound.TrackingNumber, c.Outbound.TrackingURL, c.Outbound.Status,
		pgconv.TimePtrToPgtype(c.ReceivedAt), pgconv.TimePtrToPgtype(c.InspectedAt),
		pgconv.TimePtrToPgtype(c.ShippedBackAt), pgconv.TimePtrToPgtype(c.DeliveredBackAt),
		c.Owner.Name, c.Owner.Email, c.Technician.Name, c.Technician.Email, pgconv.TimePtrToPgtype(c.AssignedAt),
		c.IssueSummary, c.SerialNumber, c.SKU,
		c.Customer.Name, c.Customer.Email, c.Customer.Phone, c.OrderReference,
		pgconv.TimeToPgtype(c.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update case", err)
	}
	if tag.RowsAffected() == 0 {
		return r.updateMiss(ctx, c.ID)
	}
	c.Version = expectedVersion + 1
	return nil
}

// updateMiss tells a vanished case apart from a lost version race.
func (r *CaseRepository) updateMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rma_cases WHERE id = $1)`, pgconv.UUIDToPgtype(id)).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check case existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("case not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("case version mismatch", nil, infra.KindConflict)
}

func (r *CaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*rmacase.Case, error) {
	c, err := converter.ScanCase(r.db.QueryRow(ctx, findCaseByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find case by ID", err)
	}
	return c, nil
}

func (r *CaseRepository) FindByShopifyReturnID(ctx context.Context, returnID string) (*rmacase.Case, error) {
	c, err := converter.ScanCase(r.db.QueryRow(ctx, findCaseByReturnIDSQL, returnID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find case by shopify return ID", err)
	}
	return c, nil
}

func (r *CaseRepository) AppendEvents(ctx context.Context, events ...rmacase.ServiceEvent) error {
	for _, ev := range events {
		if _, err := r.db.Exec(ctx, insertEventSQL, converter.EventArgs(ev)...); err != nil {
			return infra.WrapRepoErr("failed to append service event", err)
		}
	}
	return nil
}

func placeholders(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, fmt.Sprintf("$%d", i))
	}
	return strings.Join(parts, ", ")
}
