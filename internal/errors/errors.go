// Package errors provides the application error type shared by the stocks
// and capital-gains services. Service-layer code returns *AppError so that
// handlers can map failures to status codes without leaking internals.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies of a sentinel still match it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// From returns the AppError in err's chain. Any other error becomes
// ErrInternalServer wrapping it; ok is false in that case.
func From(err error) (appErr *AppError, ok bool) {
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return Wrap(ErrInternalServer, err), false
}

// General errors.
var (
	ErrInvalidInput         = &AppError{Code: "INVALID_INPUT", Message: "Malformed data", StatusCode: http.StatusBadRequest}
	ErrNotFound             = &AppError{Code: "NOT_FOUND", Message: "Not found", StatusCode: http.StatusNotFound}
	ErrUnsupportedMediaType = &AppError{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Expected application/json media type", StatusCode: http.StatusUnsupportedMediaType}
	ErrInternalServer       = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Holding errors.
var (
	ErrHoldingNotFound  = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSymbol  = &AppError{Code: "DUPLICATE_SYMBOL", Message: "Stock with this symbol already exists in portfolio", StatusCode: http.StatusBadRequest}
	ErrPriceUnavailable = &AppError{Code: "PRICE_UNAVAILABLE", Message: "Unable to fetch stock price", StatusCode: http.StatusInternalServerError}
)

// Administrative errors.
var (
	ErrInvalidAPIKey      = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrAdminNotConfigured = &AppError{Code: "ADMIN_NOT_CONFIGURED", Message: "Administrative endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)
