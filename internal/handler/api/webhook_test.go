//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/domain/webhook"
	"retail-ops-core/internal/handler/api"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/commands"
	"retail-ops-core/tests/common/builder"
	"retail-ops-core/tests/common/httptest"
	commandsmock "retail-ops-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookURL = "/api/webhooks/shopify/returns"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIngestionCommands
	cfg          config.Config
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIngestionCommands(s.mockCtrl)

	s.cfg = config.NewTestConfig()
	s.cfg.Webhook.MaxBodyBytes = 4096
	h := api.NewWebhookHandler(s.mockCommands, s.cfg)
	s.router.POST(webhookURL, h.ShopifyReturn)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestShopifyReturn() {
	b := builder.NewShopifyReturnBuilder()
	body := b.BuildBody()
	headers := b.BuildHeaders(s.cfg.Webhook.ShopifySecret, body)
	created := builder.NewCaseBuilder().With(func(cb *builder.CaseBuilder) {
		cb.Source = rmacase.SourceShopifyReturnWebhook
	}).BuildDomain()

	s.Run("new return opens a case with 201", func() {
		s.mockCommands.EXPECT().IngestShopifyReturn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.ShopifyReturnInput) (*commands.IngestionResult, error) {
				s.Equal(body, in.Body, "raw bytes must reach the verifier untouched")
				s.Equal("returns/request", in.Topic)
				s.Equal(headers[webhook.HeaderHmacSHA256], in.Signature)
				return &commands.IngestionResult{Case: created, Parsed: true, Format: webhook.FormatJSONV1}, nil
			})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, headers)

		var res resdto.WebhookIngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(created.ID.String(), res.CaseID)
		s.False(res.Deduplicated)
		s.True(res.Parsed)
		s.Equal(webhook.FormatJSONV1, res.Format)
	})

	s.Run("redelivery answers 200 with the existing case", func() {
		s.mockCommands.EXPECT().IngestShopifyReturn(gomock.Any(), gomock.Any()).
			Return(&commands.IngestionResult{Case: created, Deduplicated: true, Parsed: true}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, headers)

		var res resdto.WebhookIngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Deduplicated)
		s.Equal(created.ID.String(), res.CaseID)
	})

	s.Run("bad signature is 401", func() {
		s.mockCommands.EXPECT().IngestShopifyReturn(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrWebhookSignatureInvalid, "verify"))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body,
			map[string]string{webhook.HeaderHmacSHA256: "forged"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid webhook signature")
	})

	s.Run("oversized body never reaches ingestion", func() {
		big := []byte(strings.Repeat("a", 5000))
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, big, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Payload too large")
	})
}
