// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to watchwise.
// Password always holds a one-way hash, never the plaintext.
type User struct {
	ID        uuid.UUID // Assigned by the persistence layer on flush.
	Email     string    // Login identifier.
	Password  string    // Hashed password.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// IsPersisted reports whether the user has been written to storage.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != uuid.Nil
}
