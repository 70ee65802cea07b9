// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

// PasswordHasher abstracts password hashing so the mock data source can
// populate password_hash the same way the backend does.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
