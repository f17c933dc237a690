package request

import (
	"strings"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/shared"
)

// CaseFilterQuery is bound from the query string of both the case list and analytics.
type CaseFilterQuery struct {
	Source         string `form:"source" binding:"omitempty,oneof=manual shopify_return_webhook customer_form"`
	WarrantyStatus string `form:"warranty_status" binding:"omitempty,oneof=in_warranty out_of_warranty unknown"`
	Priority       string `form:"priority" binding:"omitempty,oneof=low normal high urgent"`
	AssigneeEmail  string `form:"assignee_email" binding:"omitempty,max=320"`
}

func (q *CaseFilterQuery) ToFilter() shared.CaseFilter {
	return shared.CaseFilter{
		Source:          rmacase.Source(q.Source),
		WarrantyStatus:  rmacase.WarrantyStatus(q.WarrantyStatus),
		Priority:        rmacase.Priority(q.Priority),
		TechnicianEmail: strings.ToLower(strings.TrimSpace(q.AssigneeEmail)),
	}
}
