package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avoronov/notepad-server/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using the bcrypt algorithm. Every call to
// Hash embeds a fresh random salt in the output, so two hashes of the same
// password differ.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given cost factor. A cost
// outside the valid bcrypt range falls back to the default cost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash transforms a plaintext password into a storable hash string.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify recomputes the hash with the salt and cost embedded in the stored
// string and compares in constant time. A malformed hash is a verification
// failure, not an error.
func (b *Bcrypt) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
