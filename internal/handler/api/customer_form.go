package api

import (
	"net/http"

	reqdto "retail-ops-core/internal/handler/dto/request"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CustomerFormHandler struct {
	cmds commands.CustomerFormCommands
}

func NewCustomerFormHandler(cmds commands.CustomerFormCommands) *CustomerFormHandler {
	return &CustomerFormHandler{cmds: cmds}
}

// @Summary Submit return request
// @Description Public return form; opens a case with source customer_form
// @Tags public
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerFormRequest true "Return request"
// @Success 201 {object} resdto.CustomerFormResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/public/rma [post]
func (h *CustomerFormHandler) Submit(c *gin.Context) {
	var req reqdto.CustomerFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Submit(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmittedCase(created))
}
