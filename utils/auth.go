package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes a SHA-256 hash of the token string, used as the
// verification-cache key so raw tokens never reach Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
