package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the given plaintext password.
//
// bcrypt embeds a random salt in its output, so two hashes of the same
// password always differ, and its cost factor makes brute-force guessing
// expensive. The default cost is used.
//
// Returns an error if the plaintext is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("cannot hash an empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt hash.
//
// Any internal error — mismatch, malformed hash, empty hash — is treated as
// a non-match. The authentication decision path must never receive an error
// here, only a boolean outcome.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
