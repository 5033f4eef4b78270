package passgen

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"OnionShare-NG/internal/errors"
)

// Argon2id parameters for persistent-session password hashes. These only
// gate reconnecting to a saved share, so they are tuned lighter than
// volume-encryption KDFs.
const (
	hashPasses   = 3
	hashMemory   = 64 * 1024 // KiB
	hashThreads  = 4
	hashKeySize  = 32
	hashSaltSize = 16
)

// HashPassword derives an Argon2id hash of password with a fresh random
// salt, encoded as "argon2id$<base64 salt>$<base64 hash>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, hashSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("hash password: %w", errors.ErrRandFailure)
	}
	key := argon2.IDKey([]byte(password), salt, hashPasses, hashMemory, hashThreads, hashKeySize)
	return fmt.Sprintf("argon2id$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword re-derives the hash with the stored salt and compares in
// constant time. Returns ErrHashMismatch for a wrong password and
// ErrMalformedHash when encoded is not a HashPassword product.
func VerifyPassword(password, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return errors.ErrMalformedHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(salt) != hashSaltSize {
		return errors.ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(want) != hashKeySize {
		return errors.ErrMalformedHash
	}

	got := argon2.IDKey([]byte(password), salt, hashPasses, hashMemory, hashThreads, hashKeySize)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.ErrHashMismatch
	}
	return nil
}
