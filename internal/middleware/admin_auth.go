package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
)

// AdminKeyHeader carries the administrative API key.
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth creates a Gin middleware that validates the X-Admin-Key header
// against the configured admin API key. Without a configured key every
// request is refused.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrAdminNotConfigured)
			return
		}
		key := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
