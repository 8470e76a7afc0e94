package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUserAlreadyExists.WrapMessage("email already exists")

	assert.True(t, stderrors.Is(err, ErrUserAlreadyExists))
	assert.Contains(t, err.Error(), "email already exists")
	assert.Contains(t, err.Error(), ErrUserAlreadyExists.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrInvalidUser.WithDetails("email: must be a valid email")

	assert.Equal(t, ErrInvalidUser.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, "email: must be a valid email", detailed.Details())
	assert.Empty(t, ErrInvalidUser.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create users")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create users", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
