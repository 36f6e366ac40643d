// Package service provides credential services for the admin API surface.
package service

// APIKeyService generates and verifies admin API keys. Keys are stored only
// as Argon2id hashes.
type APIKeyService interface {
	// GenerateKey creates a new random API key and returns both the plain
	// text (shown once to the operator) and its hash (kept in configuration).
	GenerateKey() (plainKey string, hashedKey string, err error)

	// HashKey hashes an existing plain text key.
	HashKey(plainKey string) (hashedKey string, err error)

	// VerifyKey performs a constant-time comparison between a plain key and
	// its stored hash.
	VerifyKey(plainKey string, hashedKey string) bool
}
