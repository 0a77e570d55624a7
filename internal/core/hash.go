package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// ETag returns a strong entity tag for the given content.
func ETag(content []byte) string {
	sum := sha256.Sum256(content)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
