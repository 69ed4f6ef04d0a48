package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the supplied
// plaintext does not match the stored bcrypt hash.
var ErrPasswordMismatch = errors.New("password does not match stored hash")

// HashPassword hashes the given plaintext password with bcrypt at the given
// cost. A cost of 0 (or any value below bcrypt.MinCost) selects
// bcrypt.DefaultCost. The returned string embeds the salt and cost, so it can
// be stored directly and later verified with CheckPassword.
//
// bcrypt silently truncates inputs longer than 72 bytes; such passwords are
// rejected explicitly so callers are not surprised.
func HashPassword(plaintext string, cost int) (string, error) {
	if len(plaintext) > 72 {
		return "", errors.New("password must be 72 bytes or fewer")
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash.
//
// Returns nil on match, [ErrPasswordMismatch] on mismatch, or a wrapped error
// if the stored hash is malformed. The comparison is constant-time inside
// bcrypt itself.
func CheckPassword(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("error comparing password hash: %w", err)
	}
	return nil
}
