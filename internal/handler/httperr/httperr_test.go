//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"key required", errs.Wrap(errs.ErrIdempotencyKeyRequired, "header"), http.StatusBadRequest, "Idempotency-Key header required"},
		{"key invalid", errs.Mark(errs.New("too long"), errs.ErrIdempotencyKeyInvalid), http.StatusBadRequest, "Invalid Idempotency-Key"},
		{"bad signature", errs.ErrWebhookSignatureInvalid, http.StatusUnauthorized, "Invalid webhook signature"},
		{"not found", errs.Wrapf(errs.ErrCaseNotFound, "id %s", "x"), http.StatusNotFound, "Case not found"},
		{"key reused", errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
		{"in progress", errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is in progress"},
		{"stale version", errs.ErrCaseConcurrentModification, http.StatusConflict, "Case was modified concurrently"},
		{"warranty notes", errs.ErrWarrantyNotesRequired, http.StatusUnprocessableEntity, "Warranty decision notes required"},
		{"outbound", errs.Wrap(errs.ErrOutboundCallFailed, "shopify"), http.StatusBadGateway, "Outbound platform call failed"},
		{"unexpected", errs.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, detail := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Nil(t, detail)
		})
	}
}

func TestClassify_TransitionError(t *testing.T) {
	t.Run("backward move", func(t *testing.T) {
		err := errs.Wrap(&rmacase.TransitionError{From: rmacase.StageTesting, To: rmacase.StageReceived}, "transition")

		status, msg, detail := httperr.Classify(err)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "Invalid transition", msg)
		assert.Equal(t, httperr.TransitionDetail{From: rmacase.StageTesting, To: rmacase.StageReceived}, detail)
	})

	t.Run("guard failure", func(t *testing.T) {
		err := &rmacase.TransitionError{
			From:    rmacase.StageRepairedReplaced,
			To:      rmacase.StageBackToCustomer,
			Missing: []rmacase.Field{rmacase.FieldOutboundTrackingNumber},
		}

		status, msg, detail := httperr.Classify(err)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "Missing required fields", msg)
		assert.Equal(t, []string{"outbound_tracking_number"}, detail.(httperr.TransitionDetail).MissingFields)
	})
}

func TestClassify_DomainValidationCarriesReason(t *testing.T) {
	err := errs.Wrap(errs.ErrDomainValidation, "sku required")

	status, _, detail := httperr.Classify(err)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, detail, "reason")
}
