package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the plain-text password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest against the digest of the supplied
// password. Plain equality: the digest carries no salt.
func CheckPassword(storedDigest, password string) bool {
	return HashPassword(password) == storedDigest
}
