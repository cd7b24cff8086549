package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt hash of the plaintext at the default cost.
// The hash embeds its own salt, so equal passwords hash differently.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether the plaintext matches the stored bcrypt
// hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
