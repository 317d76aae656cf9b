package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches what the platform has always used for stored hashes.
const DefaultCost = 10

// Hasher wraps bcrypt so the cost can be injected: tests run with
// bcrypt.MinCost instead of paying ~100ms per hash.
type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored hash is treated as "no match", never as an error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
