package dto

import (
	"net/http"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
)

// Transport error codes. Domain failures keep the shared.DomainError code.
const (
	// ErrCodeInternal is used for errors that are not domain errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body does not decode
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeUnauthorized is used when the tenant cannot be identified
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeRouteNotFound is used for unknown routes
	ErrCodeRouteNotFound = "ROUTE_NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:  http.StatusBadRequest,
	shared.CodeConsistency: http.StatusUnprocessableEntity,
	shared.CodeConcurrency: http.StatusConflict,
	shared.CodeConflict:    http.StatusConflict,
	shared.CodeNotFound:    http.StatusNotFound,

	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRouteNotFound:   http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
