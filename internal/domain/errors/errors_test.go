package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"catermatch/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrInvalidBudget.WithDetails("budget is negative")

	assert.True(t, errors.Is(detailed, ErrInvalidBudget))
	assert.False(t, errors.Is(detailed, ErrRequestNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, detailed.HTTPCode())
	assert.Equal(t, "event request budget is invalid: budget is negative", detailed.Error())
}

func TestBaseError_IsThroughWrap(t *testing.T) {
	err := ErrRequestNotFound.WrapMessage("load request")

	assert.True(t, errors.Is(err, ErrRequestNotFound))

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "REQUEST_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert matches")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert matches", err.Details())
}
