// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"watchwise/config"
	"watchwise/internal/domain/entity"
	domainerrors "watchwise/internal/domain/errors"
	"watchwise/internal/domain/service"
	"watchwise/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost comes from auth.bcryptCost and falls back to bcrypt.DefaultCost when unset.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit bcrypt cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation, so every call yields a different hash.
func (h *bcryptHasher) Hash(user *entity.User, password string) (string, error) {
	if user == nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage("password subject is nil")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.WithMessage(domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt"), err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with the user's bcrypt hash.
func (h *bcryptHasher) Check(user *entity.User, password string) bool {
	if user == nil || user.Password == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
