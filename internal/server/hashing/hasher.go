// Package hashing provides the pluggable one-way password hashers used by
// the credential store. All digests are hex-encoded strings, which is the
// format the credential file stores.
package hashing

import "fmt"

// Hasher turns a password into a digest and verifies candidates against a
// stored digest.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// Scheme names accepted by New.
const (
	SchemeSHA256 = "sha256"
	SchemeArgon2 = "argon2id"
)

// New returns the hasher for the configured scheme. SchemeSHA256 is the
// legacy default and matches credential files written by older versions.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case "", SchemeSHA256:
		return &SHA256Hasher{}, nil
	case SchemeArgon2:
		return &Argon2Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash scheme %q", scheme)
	}
}
