package utils

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an admin password is blank.
var ErrEmptyPassword = errors.New("password must not be blank")

// adminPasswordCost is the bcrypt work factor for admin credentials.
const adminPasswordCost = bcrypt.DefaultCost

// HashPassword hashes an admin's plaintext password using bcrypt.
// Passwords longer than 72 bytes are rejected by bcrypt itself.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), adminPasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a stored bcrypt hash.
// A blank stored hash never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
