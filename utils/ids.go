// File: utils/ids.go
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// GetID generates a random 32-character hexadecimal identifier.
func GetID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GetToken generates a 32-hex-character session token from 16 random bytes.
func GetToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GetHash returns the hex-encoded PBKDF2-HMAC-SHA256 digest of toHash with
// the given salt. 64 hex characters, matching the stored password format.
func GetHash(toHash, salt string) string {
	return hex.EncodeToString(
		pbkdf2.Key([]byte(toHash), []byte(salt), NumIterations, sha256.Size, sha256.New),
	)
}
