package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// IDResponse carries the id of a created or updated holding.
type IDResponse struct {
	ID string `json:"id"`
}

// respondWithError writes err as an ErrorResponse. Internal causes are
// logged but never sent to the client.
func respondWithError(c *gin.Context, err error) {
	appErr, known := apperrors.From(err)
	if !known || appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"internal", appErr.Internal,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
}
