package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for all stored hashes.
const Cost = 12

// Hash derives a salted bcrypt hash from the plaintext password.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
// bcrypt compares in constant time internally.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
