package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/model"
	"dino-explorer/internal/pkg/jwtutil"
	"dino-explorer/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// RequireAuth rejects the request with 401 unless a verifiable bearer token
// is present, and attaches the decoded claims to the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		c.Next()
	}
}

// RequireAdmin performs the same check, then demands the admin role.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		if c.GetString(ContextRoleKey) != model.RoleAdmin {
			response.AbortError(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, secret string) bool {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		response.AbortError(c, http.StatusUnauthorized, "Authorization header missing")
		return false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		response.AbortError(c, http.StatusUnauthorized, "Invalid authorization scheme")
		return false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	claims, err := jwtutil.ParseToken(secret, token)
	if err != nil {
		response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
		return false
	}

	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextUsernameKey, claims.Username)
	c.Set(ContextRoleKey, claims.Role)
	return true
}
