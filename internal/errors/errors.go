// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors stack traces on everything created or wrapped here.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with text and a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf is New with formatting.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// retryable is implemented by failures a caller may safely repeat.
type retryable interface {
	Retryable() bool
}

// IsRetryable reports whether any error in err's tree declares itself retryable.
func IsRetryable(err error) bool {
	var r retryable
	if !stderrors.As(err, &r) {
		return false
	}

	return r.Retryable()
}
