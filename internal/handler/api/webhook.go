package api

import (
	"errors"
	"io"
	"net/http"

	"retail-ops-core/internal/domain/webhook"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds         commands.IngestionCommands
	maxBodyBytes int64
}

func NewWebhookHandler(cmds commands.IngestionCommands, cfg config.Config) *WebhookHandler {
	maxBody := cfg.Webhook.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	return &WebhookHandler{cmds: cmds, maxBodyBytes: maxBody}
}

// @Summary Shopify return webhook
// @Description Ingest a return event. The raw body must be signed with the shared secret.
// @Tags webhooks
// @Accept json
// @Accept plain
// @Produce json
// @Param X-Shopify-Hmac-Sha256 header string true "base64 or hex HMAC-SHA256 of the raw body"
// @Param X-Shopify-Topic header string false "Webhook topic"
// @Success 200 {object} resdto.WebhookIngestResponse "duplicate delivery"
// @Success 201 {object} resdto.WebhookIngestResponse
// @Failure 401 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /api/webhooks/shopify/returns [post]
func (h *WebhookHandler) ShopifyReturn(c *gin.Context) {
	// the signature covers the exact bytes, so the body is read raw and never rebound
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read body", nil)
		return
	}

	result, err := h.cmds.IngestShopifyReturn(c.Request.Context(), commands.ShopifyReturnInput{
		Topic:     c.GetHeader(webhook.HeaderTopic),
		Signature: c.GetHeader(webhook.HeaderHmacSHA256),
		Body:      body,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.Deduplicated {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromIngestionResult(result))
}
