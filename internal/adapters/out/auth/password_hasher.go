// Package auth provides the credential primitives behind owner sign-in:
// bcrypt password hashing and JWT access tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher implements ports.PasswordHasher with bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the default bcrypt cost.
func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a bcrypt hash of the plaintext password.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares a stored hash with a candidate password. Returns
// bcrypt.ErrMismatchedHashAndPassword when they do not match.
func (h *BcryptPasswordHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
