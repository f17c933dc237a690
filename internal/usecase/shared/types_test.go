//go:build unit

package shared_test

import (
	"testing"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestCaseFilter_Matches(t *testing.T) {
	c := &rmacase.Case{
		Source:     rmacase.SourceManual,
		Priority:   rmacase.PriorityHigh,
		Warranty:   rmacase.Warranty{Status: rmacase.WarrantyIn},
		Technician: rmacase.Person{Email: "kai@example.com"},
	}

	tests := []struct {
		name   string
		filter shared.CaseFilter
		want   bool
	}{
		{"empty filter", shared.CaseFilter{}, true},
		{"source match", shared.CaseFilter{Source: rmacase.SourceManual}, true},
		{"source mismatch", shared.CaseFilter{Source: rmacase.SourceCustomerForm}, false},
		{"warranty mismatch", shared.CaseFilter{WarrantyStatus: rmacase.WarrantyOut}, false},
		{"priority match", shared.CaseFilter{Priority: rmacase.PriorityHigh}, true},
		{"technician case-insensitive", shared.CaseFilter{TechnicianEmail: " KAI@example.com"}, true},
		{"technician mismatch", shared.CaseFilter{TechnicianEmail: "lee@example.com"}, false},
		{"all set", shared.CaseFilter{Source: rmacase.SourceManual, WarrantyStatus: rmacase.WarrantyIn, Priority: rmacase.PriorityHigh, TechnicianEmail: "kai@example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}
}
