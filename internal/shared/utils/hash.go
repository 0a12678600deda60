package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIP returns a truncated SHA-256 digest of a client IP. Only the
// hash is persisted with terms acceptance records.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:16]
}
