// Package password provides one-way hashing of user passwords.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the given bcrypt cost factor.
// A cost outside the valid bcrypt range falls back to the default cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted bcrypt hash of the given plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// NeedsRehash reports whether a stored hash was created with a different
// cost than the hasher is configured with, so callers can migrate old
// hashes transparently on the next successful login.
func (h *Hasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost != h.cost
}
