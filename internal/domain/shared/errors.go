package shared

import (
	"errors"
	"fmt"
)

// Error codes. The first three form the billing engine's error taxonomy.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeConsistency = "CONSISTENCY_ERROR"
	CodeConcurrency = "CONCURRENCY_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches domain errors by code so sentinel comparisons work with errors.Is
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports input rejected before any mutation happened.
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewConsistencyError reports configuration or stored data the engine refuses to compute with.
func NewConsistencyError(format string, args ...any) *DomainError {
	return NewDomainError(CodeConsistency, fmt.Sprintf(format, args...))
}

// NewConcurrencyError reports a lock or version conflict; callers may retry.
func NewConcurrencyError(message string, cause error) *DomainError {
	return &DomainError{Code: CodeConcurrency, Message: message, Cause: cause}
}

// NewNotFoundError reports a missing resource
func NewNotFoundError(resource string) *DomainError {
	return NewDomainError(CodeNotFound, resource+" not found")
}

// NewConflictError reports a duplicate resource
func NewConflictError(format string, args ...any) *DomainError {
	return NewDomainError(CodeConflict, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrConflict            = NewDomainError(CodeConflict, "Resource already exists")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrency, "Resource was modified by another process")
)

// ErrorCode extracts the domain error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool { return ErrorCode(err) == CodeValidation }

// IsConsistencyError reports whether err is a ConsistencyError
func IsConsistencyError(err error) bool { return ErrorCode(err) == CodeConsistency }

// IsConcurrencyError reports whether err is a ConcurrencyError
func IsConcurrencyError(err error) bool { return ErrorCode(err) == CodeConcurrency }

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool { return ErrorCode(err) == CodeNotFound }
