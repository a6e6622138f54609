package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken returns base64(SHA-256(raw)). This is the only form in which a
// refresh token is ever persisted; write and lookup paths must both use it.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return base64.StdEncoding.EncodeToString(sum[:])
}
