package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a salted scrypt digest of the password. The returned
// opaque string carries both digest and salt as "hex(digest).hex(salt)", so
// the salt never needs to be stored separately. Every call draws a fresh
// random salt, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(digest) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword recomputes the digest for the supplied password using the salt
// embedded in the stored string and compares it in constant time. Malformed
// stored strings report a failed check rather than an error, so a corrupt
// credential can never crash a login handler.
func CheckPassword(password, stored string) bool {
	digestHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil || len(digest) != scryptKeyLen {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}

	computed, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(digest, computed) == 1
}
