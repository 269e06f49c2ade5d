package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"foodiecircle/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("text too long")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInvalidOccasion))
	assert.Equal(t, "Input validation failed: text too long", detailed.Error())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUnauthenticated.WrapMessage("toggle follow")

	assert.True(t, errors.Is(err, ErrUnauthenticated))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestStoreError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Wrap(NewStoreError("scan", "dishes", cause), "filter dishes")

	assert.True(t, IsStoreError(err))
	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, "scan dishes", appErr.Details())
	assert.Equal(t, "filter dishes: store scan dishes failed: connection refused", err.Error())
	assert.Equal(t, "store insert profiles failed", NewStoreError("insert", "profiles", nil).Error())
}

func TestIsStoreError_OtherErrors(t *testing.T) {
	assert.False(t, IsStoreError(nil))
	assert.False(t, IsStoreError(ErrInternalError))
}
