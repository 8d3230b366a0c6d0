package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
)

// ErrorHandler renders the last error attached to the context, unless a
// handler already wrote a response. Anything that is not an AppError is
// reported as INTERNAL_ERROR and only its log line carries the detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Get().With(
			"request_id", RequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		appErr, known := apperrors.From(err)
		if !known || appErr.Internal != nil {
			log.Errorw("request failed", "code", appErr.Code, "internal", appErr.Internal)
		}
		writeError(c, appErr)
	}
}

// NoRoute reports unknown routes through ErrorHandler as NOT_FOUND.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	}
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	writeError(c, appErr)
	c.Abort()
}
