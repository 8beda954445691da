package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	argonSaltLen = 16
	argonKeyLen  = 32
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// Argon2Hasher derives the digest with argon2id. The digest is
// hex(salt || key), so the salt travels inside the stored string and the
// credential-file contract (hex digests) is unchanged.
type Argon2Hasher struct{}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return hex.EncodeToString(append(salt, key...)), nil
}

func (h *Argon2Hasher) Verify(digest, password string) bool {
	raw, err := hex.DecodeString(digest)
	if err != nil || len(raw) != argonSaltLen+argonKeyLen {
		return false
	}

	salt := raw[:argonSaltLen]
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return subtle.ConstantTimeCompare(raw[argonSaltLen:], key) == 1
}
