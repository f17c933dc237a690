package response

import (
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type FilterResponse struct {
	Source         string `json:"source,omitempty"`
	WarrantyStatus string `json:"warranty_status,omitempty"`
	Priority       string `json:"priority,omitempty"`
	AssigneeEmail  string `json:"assignee_email,omitempty"`
}

// AnalyticsResponse rates are null when their denominator is zero.
type AnalyticsResponse struct {
	Filter              FilterResponse            `json:"filter" copier:"-"`
	GeneratedAt         time.Time                 `json:"generated_at"`
	TotalCases          int                       `json:"total_cases"`
	OpenCases           int                       `json:"open_cases"`
	OverdueCases        int                       `json:"overdue_cases"`
	StageCounts         map[rmacase.Stage]int     `json:"stage_counts"`
	WarrantyDecided     int                       `json:"warranty_decided"`
	WarrantyIn          int                       `json:"warranty_in"`
	WarrantyHitRate     *float64                  `json:"warranty_hit_rate"`
	CasesWithExceptions int                       `json:"cases_with_exceptions"`
	ExceptionRate       *float64                  `json:"exception_rate"`
	ExceptionCounts     map[rmacase.Exception]int `json:"exception_counts"`
	AvgTurnaroundHours  *float64                  `json:"avg_turnaround_hours"`
	TurnaroundSamples   int                       `json:"turnaround_samples"`
	AvgHoursInStage     *float64                  `json:"avg_hours_in_stage"`
	TechnicianLoad      []queries.TechnicianLoad  `json:"technician_load"`
	UnassignedOpenCases int                       `json:"unassigned_open_cases"`
	RepeatSerials       []queries.RepeatSerial    `json:"repeat_serials"`
}

func FromAnalyticsView(v *queries.AnalyticsView) (*AnalyticsResponse, error) {
	var res AnalyticsResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Filter = FilterResponse{
		Source:         string(v.Filter.Source),
		WarrantyStatus: string(v.Filter.WarrantyStatus),
		Priority:       string(v.Filter.Priority),
		AssigneeEmail:  v.Filter.TechnicianEmail,
	}
	if res.TechnicianLoad == nil {
		res.TechnicianLoad = []queries.TechnicianLoad{}
	}
	if res.RepeatSerials == nil {
		res.RepeatSerials = []queries.RepeatSerial{}
	}
	return &res, nil
}
