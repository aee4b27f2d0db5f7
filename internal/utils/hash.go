package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes the one-way SHA-256 digest of a raw token and returns it
// as 64 lowercase hex characters. Revoked tokens are stored by this digest
// only; the raw credential never reaches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
