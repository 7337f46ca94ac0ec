// Package errors provides custom error types for the Penny forecast API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

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

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Category errors. Taxonomy lookups themselves never return errors (unknown
// ids degrade to ok=false); these cover API input referencing unknown ids.
var (
	ErrUnknownCategory = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Category id is not in the taxonomy", StatusCode: http.StatusNotFound}
)

// Forecast errors. Aggregation fails fast on structurally malformed input
// since silent wrong totals feed numbers shown to users.
var (
	ErrForecastNotFound   = &AppError{Code: "FORECAST_NOT_FOUND", Message: "Forecast not found", StatusCode: http.StatusNotFound}
	ErrInvalidGranularity = &AppError{Code: "INVALID_GRANULARITY", Message: "Granularity must be weekly or monthly", StatusCode: http.StatusBadRequest}
	ErrMissingPeriod      = &AppError{Code: "MISSING_PERIOD", Message: "Forecast row has no period start date", StatusCode: http.StatusBadRequest}
	ErrAlreadyDecomposed  = &AppError{Code: "ALREADY_DECOMPOSED", Message: "Forecast rows were already decomposed", StatusCode: http.StatusBadRequest}
)

// Formatting errors.
var (
	ErrUnknownPlaceholder = &AppError{Code: "UNKNOWN_PLACEHOLDER", Message: "Template contains an unsupported placeholder", StatusCode: http.StatusBadRequest}
)
