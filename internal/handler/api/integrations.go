package api

import (
	"net/http"

	reqdto "retail-ops-core/internal/handler/dto/request"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// IntegrationHandler endpoints sit behind the idempotency middleware; a retried request
// with the same Idempotency-Key never reaches these methods twice.
type IntegrationHandler struct {
	cmds commands.IntegrationCommands
}

func NewIntegrationHandler(cmds commands.IntegrationCommands) *IntegrationHandler {
	return &IntegrationHandler{cmds: cmds}
}

// @Summary Import Shopify products
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client-chosen retry key"
// @Param request body reqdto.ShopifyImportRequest true "Import request"
// @Success 200 {object} resdto.IntegrationResponse
// @Header 200 {string} Idempotent-Replayed "true when the stored response was replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/integrations/shopify/import [post]
func (h *IntegrationHandler) ImportShopifyProducts(c *gin.Context) {
	var req reqdto.ShopifyImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ImportShopifyProducts(c.Request.Context(), in)
	respondIntegration(c, result, err)
}

// @Summary Sync one Shopify product
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client-chosen retry key"
// @Param sku path string true "Product SKU"
// @Param request body reqdto.ProductSyncRequest true "Fields to sync"
// @Success 200 {object} resdto.IntegrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/integrations/shopify/products/{sku}/sync [post]
func (h *IntegrationHandler) SyncShopifyProduct(c *gin.Context) {
	var req reqdto.ProductSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SyncShopifyProduct(c.Request.Context(), c.Param("sku"), in)
	respondIntegration(c, result, err)
}

// @Summary Push Klaviyo campaign
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client-chosen retry key"
// @Param request body reqdto.KlaviyoCampaignRequest true "Campaign"
// @Success 200 {object} resdto.IntegrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/integrations/klaviyo/campaigns/push [post]
func (h *IntegrationHandler) PushKlaviyoCampaign(c *gin.Context) {
	var req reqdto.KlaviyoCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.PushKlaviyoCampaign(c.Request.Context(), in)
	respondIntegration(c, result, err)
}

// A platform-side rejection (4xx) is passed through with its status so it is stored
// and replayed like any finished outcome.
func respondIntegration(c *gin.Context, result *commands.IntegrationResult, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if result.StatusCode >= http.StatusBadRequest {
		status = result.StatusCode
	}
	c.JSON(status, resdto.FromIntegrationResult(result))
}
