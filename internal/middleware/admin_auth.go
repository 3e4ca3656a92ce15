package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards operator endpoints with the X-Admin-Key header.
// An empty configured key disables those endpoints entirely.
func AdminAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			writeError(c, http.StatusServiceUnavailable, "ADMIN_NOT_CONFIGURED", "Admin endpoints are not configured")
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			writeError(c, http.StatusUnauthorized, "INVALID_ADMIN_KEY", "Invalid or missing admin key")
			return
		}
		c.Next()
	}
}
