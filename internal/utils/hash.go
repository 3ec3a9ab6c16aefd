package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword returns the bcrypt hash of password computed with cost.
//
// bcrypt salts every hash, so two calls with the same password return
// different strings. Passwords longer than 72 bytes are rejected with an
// error wrapping [bcrypt.ErrPasswordTooLong].
//
// Example usage:
//
//	hashed, err := utils.HashPassword("s3cr3t-pass", 10)
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword checks password against a bcrypt hash.
//
// It returns nil on match, [ErrPasswordMismatch] on mismatch, and a wrapped
// bcrypt error when hash is not a valid bcrypt hash.
func ComparePassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password with malformed hash: %w", err)
	}
}
