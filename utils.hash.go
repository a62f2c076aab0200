package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// processSalt is generated on first use and fixed for the life of the process.
var processSalt = sync.OnceValue(func() string {
	b := make([]byte, SaltBytes)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
})

// Salt returns the process-wide salt as hex. Hashes produced by HashPassword
// are only verifiable within the same process.
func Salt() string {
	return processSalt()
}

// HashPassword derives a hex PBKDF2-HMAC-SHA512 key from password and the
// process salt.
func HashPassword(password string) string {
	return HashPasswordWithSalt(password, Salt())
}

// HashPasswordWithSalt derives a hex PBKDF2-HMAC-SHA512 key from password and salt.
func HashPasswordWithSalt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), HashIterations, HashKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword reports whether hashed is HashPassword(password).
func VerifyPassword(password, hashed string) bool {
	generated := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(generated), []byte(hashed)) == 1
}
