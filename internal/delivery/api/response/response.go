package response

import (
	"net/http"

	deliverycontext "nomnom/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// MIMEGeoJSON is the media type of GeoJSON documents (RFC 7946).
const MIMEGeoJSON = "application/geo+json"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "CITY_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	Count     *int   `json:"count,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// List returns a successful response for a collection and reports its size in meta.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	m := meta(c)
	count := len(items)
	m.Count = &count

	return c.JSON(http.StatusOK, SuccessResponse{Data: items, Meta: m})
}

// GeoJSON writes a bare FeatureCollection; GeoJSON documents are never enveloped.
func GeoJSON(c echo.Context, fc *geojson.FeatureCollection) error {
	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, MIMEGeoJSON, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
