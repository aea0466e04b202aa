package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	RoleAdmin = "admin"
)

// Actor resolves the caller identity forwarded by the gateway and installs
// it into the gin context. Handlers that require an actor check for
// "user_id" themselves.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(headerUserID); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Set("user_id", id)
			}
		}
		if role := c.GetHeader(headerUserRole); role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	}
}

// RequireActor aborts with 401 when no actor identity was resolved.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the gateway marked the caller as an
// administrator.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("user_role"); role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			return
		}
		c.Next()
	}
}
