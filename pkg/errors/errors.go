package errors

import "net/http"

// AppError is a custom error type that includes an HTTP status code and a
// stable machine-readable code the client can switch on.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, "invalid_request", "Invalid request parameters")
	ErrNotFound       = NewAppError(http.StatusNotFound, "not_found", "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "internal_error", "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded")
)

// Helper constructors
func BadRequest(code, msg string) *AppError {
	return NewAppError(http.StatusBadRequest, code, msg)
}

func Conflict(code, msg string) *AppError {
	return NewAppError(http.StatusConflict, code, msg)
}

func NotFound(code, msg string) *AppError {
	return NewAppError(http.StatusNotFound, code, msg)
}

func Internal(code, msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, code, msg)
}
