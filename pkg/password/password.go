// Package password derives and verifies salted password hashes using scrypt.
// Stored hashes have the form "saltHex:derivedKeyHex"; the salt is random per
// hash, so hashing the same password twice yields different outputs.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Memory-hard to resist GPU/ASIC cracking.
const (
	scryptN  = 32768
	scryptR  = 8
	scryptP  = 1
	saltLen  = 16
	keyLen   = 64
)

// Hash derives a salted hash of password suitable for persistent storage.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return saltHex + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored hash. It fails closed:
// a malformed stored value yields false, never an error or panic.
func Verify(password, stored string) bool {
	salt, key, ok := strings.Cut(stored, ":")
	if !ok || salt == "" || key == "" {
		return false
	}

	derived, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	return Equal(hex.EncodeToString(derived), key)
}

// Equal compares two strings in constant time. A length mismatch returns
// false immediately; only the lengths are observable through timing.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
