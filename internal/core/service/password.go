package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// bcrypt hashes at most 72 bytes of input. Longer passwords are rejected
// outright instead of being silently truncated.
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies passwords with bcrypt. Each call to
// Hash draws a fresh random salt, so hashing the same password twice yields
// two different strings.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash returns a self-salted bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: le mot de passe ne peut pas dépasser %d octets", domain.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is a false
// return, never an error.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
