// Package auth implements the credential primitives of the server: password
// hashing, session token issue/verify, and per-request identity extraction.
package auth

import (
	"errors"
	"fmt"

	"github.com/alexsk87/notehub/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt. The salt is embedded
// in the result, so identical plaintexts yield different hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A wrong
// password is (false, nil); an error is returned only when the stored hash
// itself cannot be parsed.
func VerifyPassword(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: checking password hash: %v", common.ErrorInternal, err)
}
