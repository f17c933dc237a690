//go:build unit

package readstore

import (
	"testing"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    shared.CaseFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    shared.CaseFilter{},
			wantWhere: " FROM rma_cases ORDER BY created_at DESC, id",
			wantArgs:  nil,
		},
		{
			name:      "source only",
			filter:    shared.CaseFilter{Source: rmacase.SourceManual},
			wantWhere: " FROM rma_cases WHERE source = $1 ORDER BY",
			wantArgs:  []any{"manual"},
		},
		{
			name: "all predicates",
			filter: shared.CaseFilter{
				Source:          rmacase.SourceShopifyReturnWebhook,
				WarrantyStatus:  rmacase.WarrantyIn,
				Priority:        rmacase.PriorityUrgent,
				TechnicianEmail: "  Kai@Example.com ",
			},
			wantWhere: "WHERE source = $1 AND warranty_status = $2 AND priority = $3 AND lower(technician_email) = lower($4)",
			wantArgs:  []any{"shopify_return_webhook", "in_warranty", "urgent", "Kai@Example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
