package errors

import (
	"net/http"

	"nomnom/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request parameters",
		"",
	)

	ErrCityNotFound = NewBaseError(
		http.StatusNotFound,
		"CITY_NOT_FOUND",
		"city is not supported",
		"",
	)

	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"place is not part of the city catalog",
		"",
	)

	// Catalog errors
	ErrCatalogLoadFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_LOAD_FAILED",
		"failed to load reference catalog",
		"",
	)

	// Provider errors
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"upstream data provider is unavailable",
		"",
	)

	ErrRefreshUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REFRESH_UNAVAILABLE",
		"failed to schedule provider refresh",
		"",
	)

	// Rendering errors
	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_GENERATION_FAILED",
		"failed to generate QR code",
		"",
	)

	// Generic errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)
