// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "watchwise/internal/domain/entity"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password for the given user.
	// The user does not need to be persisted yet.
	Hash(user *entity.User, password string) (string, error)

	// Check compares a plaintext password with the user's stored hash.
	Check(user *entity.User, password string) bool
}
