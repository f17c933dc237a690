package converter

import (
	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// CaseColumns is the select list ScanCase expects, in order.
const CaseColumns = `id, source, shopify_return_id, status, priority, sla_due_at,
warranty_status, warranty_basis, warranty_notes, warranty_checked_at,
inbound_carrier, inbound_tracking_number, inbound_tracking_url, inbound_status,
outbound_carrier, outbound_tracking_number, outbound_tracking_url, outbound_status,
received_at, inspected_at, shipped_back_at, delivered_back_at,
owner_name, owner_email, technician_name, technician_email, assigned_at,
issue_summary, issue_details, serial_number, sku,
customer_name, customer_email, customer_phone, order_reference,
version, created_at, updated_at`

const EventColumns = `id, case_id, event_type, summary, notes, metadata, actor, created_at`

func ScanCase(row pgx.Row) (*rmacase.Case, error) {
	var (
		c                                        rmacase.Case
		id                                       pgtype.UUID
		source, status, priority, warrantyStatus string
		returnID                                 pgtype.Text
		slaDueAt, checkedAt, assignedAt          pgtype.Timestamptz
		receivedAt, inspectedAt                  pgtype.Timestamptz
		shippedBackAt, deliveredBackAt           pgtype.Timestamptz
		createdAt, updatedAt                     pgtype.Timestamptz
		details                                  []byte
	)
	err := row.Scan(
		&id, &source, &returnID, &status, &priority, &slaDueAt,
		&warrantyStatus, &c.Warranty.Basis, &c.Warranty.DecisionNotes, &checkedAt,
		&c.Inbound.Carrier, &c.Inbound.TrackingNumber, &c.Inbound.TrackingURL, &c.Inbound.Status,
		&c.Outbound.Carrier, &c.Outbound.TrackingNumber, &c.Outbound.TrackingURL, &c.Outbound.Status,
		&receivedAt, &inspectedAt, &shippedBackAt, &deliveredBackAt,
		&c.Owner.Name, &c.Owner.Email, &c.Technician.Name, &c.Technician.Email, &assignedAt,
		&c.IssueSummary, &details, &c.SerialNumber, &c.SKU,
		&c.Customer.Name, &c.Customer.Email, &c.Customer.Phone, &c.OrderReference,
		&c.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Source = rmacase.Source(source)
	c.ShopifyReturnID = pgconv.StringPtrFromPgtype(returnID)
	c.Status = rmacase.Stage(status)
	c.Priority = rmacase.Priority(priority)
	c.SLADueAt = pgconv.TimePtrFromPgtype(slaDueAt)
	c.Warranty.Status = rmacase.WarrantyStatus(warrantyStatus)
	c.Warranty.CheckedAt = pgconv.TimePtrFromPgtype(checkedAt)
	c.ReceivedAt = pgconv.TimePtrFromPgtype(receivedAt)
	c.InspectedAt = pgconv.TimePtrFromPgtype(inspectedAt)
	c.ShippedBackAt = pgconv.TimePtrFromPgtype(shippedBackAt)
	c.DeliveredBackAt = pgconv.TimePtrFromPgtype(deliveredBackAt)
	c.AssignedAt = pgconv.TimePtrFromPgtype(assignedAt)
	c.IssueDetails = details
	c.CreatedAt = createdAt.Time.UTC()
	c.UpdatedAt = updatedAt.Time.UTC()

	return &c, nil
}

// CaseArgs returns the values for CaseColumns, in order.
func CaseArgs(c *rmacase.Case) []any {
	var details []byte
	if len(c.IssueDetails) > 0 {
		details = c.IssueDetails
	}
	return []any{
		pgconv.UUIDToPgtype(c.ID), string(c.Source), pgconv.StringPtrToPgtype(c.ShopifyReturnID),
		string(c.Status), string(c.Priority), pgconv.TimePtrToPgtype(c.SLADueAt),
		string(c.Warranty.Status), c.Warranty.Basis, c.Warranty.DecisionNotes, pgconv.TimePtrToPgtype(c.Warranty.CheckedAt),
		c.Inbound.Carrier, c.Inbound.TrackingNumber, c.Inbound.TrackingURL, c.Inbound.Status,
		c.Outbound.Carrier, c.Outbound.TrackingNumber, c.Outbound.TrackingURL, c.Outbound.Status,
		pgconv.TimePtrToPgtype(c.ReceivedAt), pgconv.TimePtrToPgtype(c.InspectedAt),
		pgconv.TimePtrToPgtype(c.ShippedBackAt), pgconv.TimePtrToPgtype(c.DeliveredBackAt),
		c.Owner.Name, c.Owner.Email, c.Technician.Name, c.Technician.Email, pgconv.TimePtrToPgtype(c.AssignedAt),
		c.IssueSummary, details, c.SerialNumber, c.SKU,
		c.Customer.Name, c.Customer.Email, c.Customer.Phone, c.OrderReference,
		c.Version, pgconv.TimeToPgtype(c.CreatedAt), pgconv.TimeToPgtype(c.UpdatedAt),
	}
}

func ScanEvent(row pgx.Row) (rmacase.ServiceEvent, error) {
	var (
		ev         rmacase.ServiceEvent
		id, caseID pgtype.UUID
		eventType  string
		metadata   []byte
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &caseID, &eventType, &ev.Summary, &ev.Notes, &metadata, &ev.Actor, &createdAt); err != nil {
		return rmacase.ServiceEvent{}, err
	}
	ev.ID = uuid.UUID(id.Bytes)
	ev.CaseID = uuid.UUID(caseID.Bytes)
	ev.EventType = rmacase.EventType(eventType)
	ev.Metadata = metadata
	ev.CreatedAt = createdAt.Time.UTC()
	return ev, nil
}

func EventArgs(ev rmacase.ServiceEvent) []any {
	var metadata []byte
	if len(ev.Metadata) > 0 {
		metadata = ev.Metadata
	}
	return []any{
		pgconv.UUIDToPgtype(ev.ID), pgconv.UUIDToPgtype(ev.CaseID), string(ev.EventType),
		ev.Summary, ev.Notes, metadata, ev.Actor, pgconv.TimeToPgtype(ev.CreatedAt),
	}
}
