package model

// PasswordHasher performs one-way password hashing and verification.
// Verify reports false for any malformed hash instead of failing.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}
