// Package faults defines the error types the adapter surfaces to callers.
package faults

import "fmt"

// ValidationError reports malformed input caught before any network call:
// a bad hash, an oversized memo, an unparseable identifier. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a named field.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OperationError is the terminal failure of a ledger operation after the retry
// budget is spent. It carries the attempt count and the last underlying error
// for diagnostics.
type OperationError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
