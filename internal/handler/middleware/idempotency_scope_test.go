//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/gateway"
	"retail-ops-core/tests/common/httptest"
	gatewaymock "retail-ops-core/tests/mock/gateway"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newScopedRouter(t *testing.T, gw gateway.Gateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	g := router.Group("/api/integrations")
	g.Use(middleware.NewIdempotencyMiddleware(gw, config.NewTestConfig().Idempotency).Handler())
	g.POST("/shopify/products/:sku/sync", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func TestIdempotencyMiddleware_ScopesKeyByRouteTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)

	gw.EXPECT().
		Execute(gomock.Any(), "POST:/api/integrations/shopify/products/:sku/sync:sync-42", gomock.Any(), gomock.Any()).
		Return(&gateway.Result{Response: idempotency.StoredResponse{StatusCode: http.StatusAccepted}, Replayed: true}, nil)

	rec := httptest.PerformRequestWithHeaders(t, newScopedRouter(t, gw), http.MethodPost,
		"/api/integrations/shopify/products/AMP-200/sync", map[string]any{"quantity": 1}, "",
		map[string]string{middleware.HeaderIdempotencyKey: " sync-42 "})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(middleware.HeaderIdempotentReplayed))
}

func TestIdempotencyMiddleware_GatewayErrorsAreMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)

	gw.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Wrap(errs.ErrDatabaseOperationFailed, "store down"))

	rec := httptest.PerformRequestWithHeaders(t, newScopedRouter(t, gw), http.MethodPost,
		"/api/integrations/shopify/products/AMP-200/sync", map[string]any{}, "",
		map[string]string{middleware.HeaderIdempotencyKey: "sync-43"})

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
