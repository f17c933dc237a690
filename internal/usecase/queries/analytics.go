package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"sort"
	"strings"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type TechnicianLoad struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	OpenCases int    `json:"open_cases"`
}

type RepeatSerial struct {
	SerialNumber string      `json:"serial_number"`
	CaseCount    int         `json:"case_count"`
	CaseIDs      []uuid.UUID `json:"case_ids"`
}

// AnalyticsView summarizes the cases in scope. Rates are nil when their
// denominator is zero.
type AnalyticsView struct {
	Filter              shared.CaseFilter         `json:"filter"`
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
	TechnicianLoad      []TechnicianLoad          `json:"technician_load"`
	UnassignedOpenCases int                       `json:"unassigned_open_cases"`
	RepeatSerials       []RepeatSerial            `json:"repeat_serials"`
}

type AnalyticsQueries interface {
	Summary(ctx context.Context, filter shared.CaseFilter) (*AnalyticsView, error)
}

type analyticsQueriesImpl struct {
	store shared.CaseReadStore
	clock clock.Clock
}

func NewAnalyticsQueries(store shared.CaseReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store, clock: clk}
}

func (q *analyticsQueriesImpl) Summary(ctx context.Context, filter shared.CaseFilter) (*AnalyticsView, error) {
	cases, events, err := loadScope(ctx, q.store, filter)
	if err != nil {
		return nil, err
	}
	return Summarize(filter, cases, events, q.clock.Now()), nil
}

// Summarize is the pure KPI computation over an already-filtered case set.
func Summarize(filter shared.CaseFilter, cases []*rmacase.Case, events []rmacase.ServiceEvent, now time.Time) *AnalyticsView {
	v := &AnalyticsView{
		Filter:          filter,
		GeneratedAt:     now,
		TotalCases:      len(cases),
		StageCounts:     make(map[rmacase.Stage]int),
		ExceptionCounts: make(map[rmacase.Exception]int),
		TechnicianLoad:  []TechnicianLoad{},
		RepeatSerials:   []RepeatSerial{},
	}

	byCase := groupEvents(events)
	techs := make(map[string]*TechnicianLoad)
	serials := make(map[string][]uuid.UUID)
	var turnaroundSum, stageHoursSum float64

	for _, c := range cases {
		v.StageCounts[c.Status]++

		if c.IsOpen() {
			v.OpenCases++
			stageHoursSum += c.HoursInStage(byCase[c.ID], now)
			email := strings.ToLower(strings.TrimSpace(c.Technician.Email))
			if email == "" {
				v.UnassignedOpenCases++
			} else {
				load, ok := techs[email]
				if !ok {
					load = &TechnicianLoad{Email: email, Name: c.Technician.Name}
					techs[email] = load
				}
				load.OpenCases++
			}
		}
		if c.IsOverdue(now) {
			v.OverdueCases++
		}

		if c.Warranty.Status.IsDecided() {
			v.WarrantyDecided++
			if c.Warranty.Status == rmacase.WarrantyIn {
				v.WarrantyIn++
			}
		}

		if exceptions := c.Exceptions(now); len(exceptions) > 0 {
			v.CasesWithExceptions++
			for _, e := range exceptions {
				v.ExceptionCounts[e]++
			}
		}

		if hours, ok := c.TurnaroundHours(); ok {
			turnaroundSum += hours
			v.TurnaroundSamples++
		}

		if serial := strings.ToUpper(strings.TrimSpace(c.SerialNumber)); serial != "" {
			serials[serial] = append(serials[serial], c.ID)
		}
	}

	v.WarrantyHitRate = ratio(float64(v.WarrantyIn), v.WarrantyDecided)
	v.ExceptionRate = ratio(float64(v.CasesWithExceptions), v.TotalCases)
	v.AvgTurnaroundHours = ratio(turnaroundSum, v.TurnaroundSamples)
	v.AvgHoursInStage = ratio(stageHoursSum, v.OpenCases)

	for _, load := range techs {
		v.TechnicianLoad = append(v.TechnicianLoad, *load)
	}
	sort.Slice(v.TechnicianLoad, func(i, j int) bool {
		if v.TechnicianLoad[i].OpenCases != v.TechnicianLoad[j].OpenCases {
			return v.TechnicianLoad[i].OpenCases > v.TechnicianLoad[j].OpenCases
		}
		return v.TechnicianLoad[i].Email < v.TechnicianLoad[j].Email
	})

	for serial, ids := range serials {
		if len(ids) > 1 {
			v.RepeatSerials = append(v.RepeatSerials, RepeatSerial{SerialNumber: serial, CaseCount: len(ids), CaseIDs: ids})
		}
	}
	sort.Slice(v.RepeatSerials, func(i, j int) bool {
		if v.RepeatSerials[i].CaseCount != v.RepeatSerials[j].CaseCount {
			return v.RepeatSerials[i].CaseCount > v.RepeatSerials[j].CaseCount
		}
		return v.RepeatSerials[i].SerialNumber < v.RepeatSerials[j].SerialNumber
	})

	return v
}

func ratio(num float64, den int) *float64 {
	if den == 0 {
		return nil
	}
	r := num / float64(den)
	return &r
}
