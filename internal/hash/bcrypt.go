// Package hash provides password hashing behind a small, swappable surface.
package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt derives and compares password hashes using the bcrypt scheme.
type Bcrypt struct {
	// Cost is the bcrypt cost factor. Zero means bcrypt.DefaultCost.
	Cost int
}

// NewBcrypt constructs a Bcrypt hasher with the given cost factor.
func NewBcrypt(cost int) *Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{Cost: cost}
}

// Hash derives a salted one-way hash of the given password.
func (b *Bcrypt) Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), b.Cost)
}

// Compare checks password against hash. Returns a non-nil error on mismatch.
func (b *Bcrypt) Compare(hash []byte, password string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}
