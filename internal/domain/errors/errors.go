package errors

import (
	"watchwise/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // Human-readable error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human-readable error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		"USER_ALREADY_EXISTS",
		"a user with this email already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	ErrInvalidUser = NewBaseError(
		"INVALID_USER",
		"user failed validation",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		"PASSWORD_HASH_FAILED",
		"failed to hash password",
		"",
	)

	// System-related errors
	ErrTransactionFailed = NewBaseError(
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrSchemaMigrationFailed = NewBaseError(
		"SCHEMA_MIGRATION_FAILED",
		"failed to migrate database schema",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the human-readable error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
