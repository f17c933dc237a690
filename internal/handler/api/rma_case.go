package api

import (
	"net/http"

	reqdto "retail-ops-core/internal/handler/dto/request"
	resdto "retail-ops-core/internal/handler/dto/response"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/usecase/commands"
	"retail-ops-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CaseHandler struct {
	cmds commands.CaseCommands
	q    queries.CaseQueries
}

func NewCaseHandler(cmds commands.CaseCommands, q queries.CaseQueries) *CaseHandler {
	return &CaseHandler{cmds: cmds, q: q}
}

// @Summary Create RMA case
// @Description Open a case manually from the dashboard
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCaseRequest true "Create case request"
// @Success 201 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rma/cases [post]
func (h *CaseHandler) Create(c *gin.Context) {
	var req reqdto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithCase(c, http.StatusCreated, created.ID)
}

// @Summary List RMA cases
// @Description List cases newest first with derived stage age and exceptions
// @Tags rma
// @Produce json
// @Security BearerAuth
// @Param source query string false "Case source" Enums(manual, shopify_return_webhook, customer_form)
// @Param warranty_status query string false "Warranty status" Enums(in_warranty, out_of_warranty, unknown)
// @Param priority query string false "Priority" Enums(low, normal, high, urgent)
// @Param assignee_email query string false "Technician email"
// @Success 200 {object} resdto.CaseListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/rma/cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	var q reqdto.CaseFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCaseViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cases", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get RMA case
// @Description Get a case with its service events
// @Tags rma
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Success 200 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rma/cases/{id} [get]
func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Transition RMA case
// @Description Move a case forward through its stages
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Param request body reqdto.TransitionRequest true "Target stage"
// @Success 200 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rma/cases/{id}/status [post]
func (h *CaseHandler) Transition(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Transition(c.Request.Context(), id, req.ToInput(), middleware.Actor(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Update tracking
// @Description Record inbound or outbound logistics; may advance the case automatically
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Param request body reqdto.TrackingUpdateRequest true "Tracking update"
// @Success 200 {object} resdto.TrackingUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rma/cases/{id}/tracking [post]
func (h *CaseHandler) UpdateTracking(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req reqdto.TrackingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.UpdateTracking(c.Request.Context(), id, req.ToInput(), middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, ok := h.loadCase(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.TrackingUpdateResponse{Case: view, AutoAdvancedTo: result.AutoAdvancedTo})
}

// @Summary Record warranty decision
// @Description Record the warranty outcome; the case status is unchanged
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Param request body reqdto.WarrantyDecisionRequest true "Warranty decision"
// @Success 200 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rma/cases/{id}/warranty [post]
func (h *CaseHandler) DecideWarranty(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req reqdto.WarrantyDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.DecideWarranty(c.Request.Context(), id, req.ToInput(), middleware.Actor(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Assign RMA case
// @Description Set the owner and/or technician
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Param request body reqdto.AssignRequest true "Assignees"
// @Success 200 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rma/cases/{id}/assignment [post]
func (h *CaseHandler) Assign(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req reqdto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Assign(c.Request.Context(), id, req.ToInput(), middleware.Actor(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Add note
// @Description Append a free-text note to the case history
// @Tags rma
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case ID"
// @Param request body reqdto.NoteRequest true "Note"
// @Success 201 {object} resdto.CaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rma/cases/{id}/notes [post]
func (h *CaseHandler) AddNote(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req reqdto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.AddNote(c.Request.Context(), id, req.Note, middleware.Actor(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithCase(c, http.StatusCreated, id)
}

func (h *CaseHandler) respondWithCase(c *gin.Context, status int, id uuid.UUID) {
	res, ok := h.loadCase(c, id)
	if !ok {
		return
	}
	c.JSON(status, res)
}

func (h *CaseHandler) loadCase(c *gin.Context, id uuid.UUID) (*resdto.CaseResponse, bool) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return nil, false
	}
	res, err := resdto.FromCaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render case", nil)
		return nil, false
	}
	return res, true
}

func caseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
