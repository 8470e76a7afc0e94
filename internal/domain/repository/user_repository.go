// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"watchwise/internal/domain/entity"
	"watchwise/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// CreateBatch persists several new users with as few round trips as possible.
	CreateBatch(ctx context.Context, users []*entity.User) error

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)

	// DeleteAll permanently removes every user.
	DeleteAll(ctx context.Context) error
}
