// Package service declares the infrastructure-backed capabilities the usecases depend on:
// credential hashing, session tokens and order event publishing.
package service

// PasswordHasher hashes account passwords. Every hash carries its own salt.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
