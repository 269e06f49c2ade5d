// Package errors defines the application error taxonomy exposed to delivery layers.
package errors

import (
	"net/http"

	"foodiecircle/internal/errors"
)

// AppError is an error the delivery layer can render for a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a client-facing failure identified by its business code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is compares business codes, so a copy made by WithDetails still matches
// the predefined value it came from.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && e.errorCode == other.errorCode
}

// WrapMessage adds call-site context without hiding the error's identity.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details for the client.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

var (
	ErrUnauthenticated = NewBaseError(http.StatusUnauthorized, "UNAUTHENTICATED", "Sign in to follow users or restaurants", "")
	ErrForbidden       = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")

	ErrValidationFailed    = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrInvalidOccasion     = NewBaseError(http.StatusBadRequest, "INVALID_OCCASION", "Unknown occasion", "")
	ErrInvalidFollowTarget = NewBaseError(http.StatusBadRequest, "INVALID_FOLLOW_TARGET", "Exactly one of user or restaurant must be given", "")
	ErrInvalidCategory     = NewBaseError(http.StatusBadRequest, "INVALID_CATEGORY", "Search category must be people or restaurants", "")
	ErrInvalidQRCode       = NewBaseError(http.StatusBadRequest, "INVALID_QR_CODE", "Invalid QR code", "")

	ErrSubscriptionNotFound = NewBaseError(http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "Subscription not found", "")
	ErrProfileNotFound      = NewBaseError(http.StatusNotFound, "PROFILE_NOT_FOUND", "User not found", "")
	ErrDeviceNotFound       = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found", "")

	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error", "")
)
