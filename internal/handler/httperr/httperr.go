package httperr

import (
	"errors"
	"net/http"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// TransitionDetail lets a caller correct a rejected stage change without guessing.
type TransitionDetail struct {
	From          rmacase.Stage `json:"from,omitempty"`
	To            rmacase.Stage `json:"to"`
	MissingFields []string      `json:"missing_fields,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its status code and a stable message.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string, any) {
	var te *rmacase.TransitionError
	switch {
	case errors.As(err, &te):
		detail := TransitionDetail{From: te.From, To: te.To}
		if len(te.Missing) > 0 {
			detail.MissingFields = te.MissingFieldNames()
			return http.StatusUnprocessableEntity, "Missing required fields", detail
		}
		return http.StatusUnprocessableEntity, "Invalid transition", detail
	case errs.Is(err, errs.ErrIdempotencyKeyRequired):
		return http.StatusBadRequest, "Idempotency-Key header required", nil
	case errs.Is(err, errs.ErrIdempotencyKeyInvalid):
		return http.StatusBadRequest, "Invalid Idempotency-Key", nil
	case errs.Is(err, errs.ErrWebhookSignatureInvalid):
		return http.StatusUnauthorized, "Invalid webhook signature", nil
	case errs.Is(err, errs.ErrCaseNotFound):
		return http.StatusNotFound, "Case not found", nil
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		return http.StatusConflict, "Idempotency key reused with a different request", nil
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request with this idempotency key is in progress", nil
	case errs.Is(err, errs.ErrCaseConcurrentModification):
		return http.StatusConflict, "Case was modified concurrently", nil
	case errs.Is(err, errs.ErrWarrantyNotesRequired):
		return http.StatusUnprocessableEntity, "Warranty decision notes required", nil
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Validation failed", gin.H{"reason": err.Error()}
	case errs.Is(err, errs.ErrOutboundCallFailed):
		return http.StatusBadGateway, "Outbound platform call failed", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
