package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [Hasher] using the bcrypt KDF. bcrypt embeds a
// per-password salt in the hash and its comparison is constant-time, which
// covers the hardening requirements without extra bookkeeping.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// HashPassword implements [Hasher].
func (h *BcryptHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword implements [Hasher].
func (h *BcryptHasher) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
