//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/pkg/jwt"
	"retail-ops-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(svc)
	router.GET("/api/rma/whoami", auth.RequireAuth(), func(c *gin.Context) {
		claims, ok := middleware.GetStaff(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"actor": middleware.Actor(c), "role": claims.Role})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	router := newAuthRouter(t, svc)

	t.Run("valid token exposes the staff actor", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "Tech@Example.com", "Tech", "technician")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/rma/whoami", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "staff:tech@example.com", body["actor"])
		assert.Equal(t, "technician", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/rma/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme is treated as missing", func(t *testing.T) {
		rec := httptest.PerformRawRequest(t, router, http.MethodGet, "/api/rma/whoami", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("unit-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "ops@example.com", "Ops", "staff")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/rma/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), "ops@example.com", "Ops", "staff")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/rma/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestActor_FallsBackWithoutEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()

	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
	assert.Equal(t, "staff:unknown", middleware.Actor(c))

	middleware.SetStaff(c, &jwt.Claims{StaffID: id, Role: "staff"})
	assert.Equal(t, "staff:"+id.String(), middleware.Actor(c))
}
