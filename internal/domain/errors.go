package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight search domain.
var (
	// ErrInvalidRequest indicates the caller's input failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrLocationNotFound indicates a place-name query resolved to no location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUpstreamFailure indicates a failure in the upstream travel-data
	// provider. Details are logged server-side and never exposed to callers.
	ErrUpstreamFailure = errors.New("upstream provider failure")
)

// UpstreamError wraps a failure from the upstream travel-data provider with
// the operation that failed. It matches ErrUpstreamFailure under errors.Is.
type UpstreamError struct {
	// Op is the upstream operation that failed (e.g., "auto-complete")
	Op string

	// Err is the underlying error
	Err error
}

// NewUpstreamError creates an UpstreamError for the given operation.
func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports a match against the ErrUpstreamFailure sentinel so callers can
// test the error category without knowing the concrete type.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailure
}
