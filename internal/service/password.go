package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts one-way password hashing so services never touch
// the algorithm directly.
type PasswordHasher interface {
	// Hash produces a salted digest safe to persist. Equal plaintexts yield
	// different digests on every call.
	Hash(plaintext string) (string, error)
	// Check reports whether plaintext matches the stored digest. A malformed
	// digest reports false rather than an error, so stored-state shape never
	// leaks through the error path.
	Check(plaintext, hashed string) bool
}

const bcryptCost = 10

type bcryptHasher struct{}

// NewBcryptHasher returns the production PasswordHasher.
func NewBcryptHasher() PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (bcryptHasher) Check(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
