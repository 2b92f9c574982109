package apperror

import (
	"errors"
	"net/http"
)

// Machine-readable error codes surfaced to API clients. These are stable;
// the front end switches on them, so never rename an existing code.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidState    = "INVALID_STATE"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL_ERROR"
	CodeAlreadyActive   = "SHIFT_ALREADY_ACTIVE"
	CodeInsufficientPay = "INSUFFICIENT_PAYMENT"
	CodeNoActiveShift   = "NO_ACTIVE_SHIFT"
	CodeOpenTablesExist = "OPEN_TABLES_EXIST"
)

// AppError represents an application error with an HTTP status code and a
// stable machine-readable error code.
type AppError struct {
	Code      int          `json:"code"`
	ErrorCode string       `json:"error_code"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, ErrorCode: CodeNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, ErrorCode: CodeUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, ErrorCode: CodeForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, ErrorCode: CodeBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, ErrorCode: CodeInternal, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, ErrorCode: CodeConflict, Message: "Resource already exists"}
	ErrInvalidLogin   = &AppError{Code: http.StatusUnauthorized, ErrorCode: CodeUnauthorized, Message: "Invalid name or login code"}
	ErrTokenExpired   = &AppError{Code: http.StatusUnauthorized, ErrorCode: CodeUnauthorized, Message: "Token has expired"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, ErrorCode: CodeUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, errorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:      http.StatusUnprocessableEntity,
		ErrorCode: CodeValidation,
		Message:   "Validation failed",
		Errors:    fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:      http.StatusNotFound,
		ErrorCode: CodeNotFound,
		Message:   resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:      http.StatusConflict,
		ErrorCode: CodeConflict,
		Message:   message,
	}
}

// NewInvalidStateError creates an error for operations rejected because the
// entity is in the wrong lifecycle state (submitting an empty order, ending
// a shift with open tables, and so on).
func NewInvalidStateError(errorCode, message string) *AppError {
	return &AppError{
		Code:      http.StatusBadRequest,
		ErrorCode: errorCode,
		Message:   message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeBadRequest,
		Message:   message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// HasCode reports whether err is an AppError carrying the given error code.
func HasCode(err error, errorCode string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.ErrorCode == errorCode
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: CodeInternal,
		Message:   err.Error(),
	}
}
