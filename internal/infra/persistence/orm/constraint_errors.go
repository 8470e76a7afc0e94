package orm

import (
	"strings"

	domainerrors "watchwise/internal/domain/errors"
	"watchwise/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fallback for dialects that do not translate errors (PostgreSQL 23505, SQLite UNIQUE)
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// translateWriteError maps driver constraint failures onto domain errors.
// The driver message is kept so the violated constraint stays visible.
func translateWriteError(err error, message string) error {
	if isUniqueConstraintViolation(err) {
		return errors.WithMessage(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"), err.Error())
	}
	if isNotNullConstraintViolation(err) {
		return errors.WithMessage(domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information"), err.Error())
	}
	if isForeignKeyConstraintViolation(err) {
		return errors.WithMessage(domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference"), err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}
