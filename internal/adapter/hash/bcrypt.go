package hash

import (
	"golang.org/x/crypto/bcrypt"

	"go-courses-api/internal/core/ports"
)

// BcryptHasher implements ports.PasswordHasher over bcrypt. bcrypt salts
// every digest and its comparison is constant-time.
type BcryptHasher struct {
	cost int
}

// Ensure BcryptHasher implements ports.PasswordHasher
var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given cost. Costs outside
// bcrypt's supported range fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(secret, digest string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
}
