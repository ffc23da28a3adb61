package ports

import "context"

// PasswordHasher turns plaintext secrets into salted one-way hashes.
type PasswordHasher interface {
	// Hash returns a fresh salted hash; two calls with the same secret differ.
	// Failures wrap domain.ErrHashFailure.
	Hash(ctx context.Context, secret string) (string, error)
	Verify(secret, hash string) bool
}
