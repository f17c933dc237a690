package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxStaffClaimsKey = "staff_claims"
	ctxJWTClaimsKey   = "jwt_claims"
)

var (
	errTokenMissing = errs.New("access token missing")
	errTokenInvalid = errs.New("access token invalid")
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), "Invalid or expired token", nil)
			return
		}

		SetStaff(c, claims)
		c.Next()
	}
}

// SetStaff records the authenticated staff member on the request context.
func SetStaff(c *gin.Context, claims *jwt.Claims) {
	c.Set(ctxStaffClaimsKey, claims)
	c.Set(ctxJWTClaimsKey, map[string]any{
		"staff_id": claims.StaffID.String(),
		"email":    claims.Email,
		"role":     claims.Role,
	})
}

func GetStaff(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxStaffClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// Actor is the audit identity written onto service events.
func Actor(c *gin.Context) string {
	claims, ok := GetStaff(c)
	if !ok {
		return "staff:unknown"
	}
	if claims.Email != "" {
		return "staff:" + strings.ToLower(claims.Email)
	}
	return "staff:" + claims.StaffID.String()
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
