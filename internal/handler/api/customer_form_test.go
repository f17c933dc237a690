//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/handler/api"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/commands"
	"retail-ops-core/tests/common/builder"
	"retail-ops-core/tests/common/httptest"
	"retail-ops-core/tests/common/testutil"
	commandsmock "retail-ops-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const customerFormURL = "/api/public/rma"

type CustomerFormHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerFormCommands
}

func (s *CustomerFormHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerFormCommands(s.mockCtrl)
	s.router.POST(customerFormURL, api.NewCustomerFormHandler(s.mockCommands).Submit)
}

func (s *CustomerFormHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerFormHandlerTestSuite))
}

func (s *CustomerFormHandlerTestSuite) TestSubmit() {
	b := builder.NewCaseBuilder().With(func(cb *builder.CaseBuilder) {
		cb.Source = rmacase.SourceCustomerForm
	})

	s.Run("form fields are copied into the input", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CustomerFormInput) (*rmacase.Case, error) {
				s.Equal("Dana Reyes", in.Name)
				s.Equal("dana@example.com", in.Email)
				s.Equal("SN-4411", in.SerialNumber)
				s.Equal("1Z999", in.InboundTrackingNumber)
				return b.BuildDomain(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, customerFormURL, b.BuildCustomerFormDTO(), "")

		var res resdto.CustomerFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID.String(), res.CaseID)
		s.Equal(rmacase.StageReceived, res.Status)
	})

	for _, tc := range []testCaseRequest{
		{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "dana"), expectCode: http.StatusBadRequest},
		{name: "missing issue summary", mutate: testutil.Field("issue_summary", nil), expectCode: http.StatusBadRequest},
	} {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), b.BuildCustomerFormDTO(), tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, customerFormURL, body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	s.Run("domain rejection is 422 with reason", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("issue summary is blank"), errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, customerFormURL, b.BuildCustomerFormDTO(), "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(body.Detail["reason"], "issue summary is blank")
	})
}
