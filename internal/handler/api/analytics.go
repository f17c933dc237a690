package api

import (
	"net/http"

	reqdto "retail-ops-core/internal/handler/dto/request"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Case analytics
// @Description Fleet KPIs over the cases matching the same filter as the case list
// @Tags rma
// @Produce json
// @Security BearerAuth
// @Param source query string false "Case source" Enums(manual, shopify_return_webhook, customer_form)
// @Param warranty_status query string false "Warranty status" Enums(in_warranty, out_of_warranty, unknown)
// @Param priority query string false "Priority" Enums(low, normal, high, urgent)
// @Param assignee_email query string false "Technician email"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/rma/analytics [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	var q reqdto.CaseFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.q.Summary(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAnalyticsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render analytics", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
