package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a fortune error code.
type ErrorCode string

const (
	ErrConfig          ErrorCode = "CONFIG"           // 400
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrNoMatch         ErrorCode = "NO_MATCH"         // 404
	ErrMalformedHeader ErrorCode = "MALFORMED_HEADER" // 422
	ErrTruncatedData   ErrorCode = "TRUNCATED_DATA"   // 422
	ErrIO              ErrorCode = "IO"               // 500
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// FortuneError represents a structured error with code, status, and details.
type FortuneError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *FortuneError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConfig creates a 400 error for weight or flag misconfiguration.
func NewConfig(msg string) *FortuneError {
	return &FortuneError{
		Code:    ErrConfig,
		Status:  400,
		Message: msg,
	}
}

// NewPartialWeights creates a 400 error for shelf weights that do not sum to 100%.
func NewPartialWeights(total float64) *FortuneError {
	return &FortuneError{
		Code:    ErrConfig,
		Status:  400,
		Message: fmt.Sprintf("partial probabilities given, total: %g%%", total),
		Details: map[string]any{"total_percent": total},
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *FortuneError {
	return &FortuneError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a location that resolves to no sources.
func NewNotFound(location string) *FortuneError {
	return &FortuneError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found", location),
		Details: map[string]any{"location": location},
	}
}

// NewNoMatch creates a 404 error for when filtering leaves no cookies to draw from.
func NewNoMatch(msg string) *FortuneError {
	return &FortuneError{
		Code:    ErrNoMatch,
		Status:  404,
		Message: msg,
	}
}

// NewMalformedHeader creates a 422 error for an index whose header cannot be read.
func NewMalformedHeader(msg string) *FortuneError {
	return &FortuneError{
		Code:    ErrMalformedHeader,
		Status:  422,
		Message: msg,
	}
}

// NewTruncatedData creates a 422 error for an offset table inconsistent with its header.
func NewTruncatedData(msg string) *FortuneError {
	return &FortuneError{
		Code:    ErrTruncatedData,
		Status:  422,
		Message: msg,
	}
}

// NewIO creates a 500 error wrapping a filesystem failure.
func NewIO(path string, err error) *FortuneError {
	return &FortuneError{
		Code:    ErrIO,
		Status:  500,
		Message: fmt.Sprintf("%s: %v", path, err),
		Details: map[string]any{"path": path},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the original error is kept in Details for logging.
func NewInternal(err error) *FortuneError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &FortuneError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error is a FortuneError with the given code, unwrapping as needed.
func Is(err error, code ErrorCode) bool {
	var fErr *FortuneError
	if stderrors.As(err, &fErr) {
		return fErr.Code == code
	}
	return false
}
