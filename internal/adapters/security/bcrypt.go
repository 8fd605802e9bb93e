// Package security provides the password hashing adapter.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/basecamp/internal/ports/secondary"
)

// BcryptHasher implements secondary.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted hash from a plain text password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Ensure BcryptHasher implements the interface.
var _ secondary.PasswordHasher = (*BcryptHasher)(nil)
