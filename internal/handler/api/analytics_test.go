//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/handler/api"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/pkg/ptr"
	"retail-ops-core/internal/usecase/queries"
	"retail-ops-core/internal/usecase/shared"
	"retail-ops-core/tests/common/httptest"
	queriesmock "retail-ops-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAnalyticsQueries
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.router.GET("/api/rma/analytics", api.NewAnalyticsHandler(s.mockQueries).Summary)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestSummary() {
	s.Run("view is rendered with the filter echoed", func() {
		filter := shared.CaseFilter{Priority: rmacase.PriorityUrgent}
		caseA, caseB := uuid.New(), uuid.New()
		s.mockQueries.EXPECT().Summary(gomock.Any(), filter).Return(&queries.AnalyticsView{
			Filter:          filter,
			GeneratedAt:     time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
			TotalCases:      4,
			OpenCases:       3,
			StageCounts:     map[rmacase.Stage]int{rmacase.StageReceived: 2, rmacase.StageTesting: 1, rmacase.StageBackToCustomer: 1},
			WarrantyDecided: 2,
			WarrantyIn:      1,
			WarrantyHitRate: ptr.To(0.5),
			RepeatSerials:   []queries.RepeatSerial{{SerialNumber: "SN-1", CaseCount: 2, CaseIDs: []uuid.UUID{caseA, caseB}}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rma/analytics?priority=urgent", nil, "")

		var res resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("urgent", res.Filter.Priority)
		s.Equal(4, res.TotalCases)
		s.Equal(2, res.StageCounts[rmacase.StageReceived])
		s.Require().NotNil(res.WarrantyHitRate)
		s.InDelta(0.5, *res.WarrantyHitRate, 1e-9)
		s.Nil(res.ExceptionRate)
		s.NotNil(res.TechnicianLoad)
		s.Require().Len(res.RepeatSerials, 1)
		s.ElementsMatch([]uuid.UUID{caseA, caseB}, res.RepeatSerials[0].CaseIDs)
	})

	s.Run("unknown warranty status is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rma/analytics?warranty_status=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}
