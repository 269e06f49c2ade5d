package errors

import (
	"fmt"
	"net/http"

	"foodiecircle/internal/errors"
)

// StoreError is the only failure the record store adapter surfaces.
// Connectivity failures, constraint violations and malformed predicates all
// become a StoreError. The adapter never retries; callers may.
type StoreError struct {
	op         string
	collection string
	err        error
}

// NewStoreError creates a StoreError for op on collection caused by err.
func NewStoreError(op, collection string, err error) *StoreError {
	return &StoreError{op: op, collection: collection, err: err}
}

func (e *StoreError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("store %s %s failed", e.op, e.collection)
	}

	return fmt.Sprintf("store %s %s failed: %v", e.op, e.collection, e.err)
}

func (e *StoreError) Unwrap() error { return e.err }

// Op is the failed operation: scan, insert or delete.
func (e *StoreError) Op() string { return e.op }

// Collection is the table or in-memory collection the operation targeted.
func (e *StoreError) Collection() string { return e.collection }

// Retryable is always true; the store itself never retries.
func (e *StoreError) Retryable() bool { return true }

// HTTPCode returns 503 Service Unavailable.
func (e *StoreError) HTTPCode() int { return http.StatusServiceUnavailable }

// ErrorCode returns STORE_UNAVAILABLE.
func (e *StoreError) ErrorCode() string { return "STORE_UNAVAILABLE" }

// Message returns the client-facing message, which never includes the cause.
func (e *StoreError) Message() string { return "Data store unavailable, please try again" }

// Details names the failed operation and collection.
func (e *StoreError) Details() string { return e.op + " " + e.collection }

// IsStoreError reports whether err carries a StoreError.
func IsStoreError(err error) bool {
	_, ok := errors.AsType[*StoreError](err)

	return ok
}
