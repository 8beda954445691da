package models

// User is one record in the credential store. PasswordDigest is the
// hex-encoded output of the configured hasher; the plaintext password is
// never stored.
type User struct {
	UserName       string
	PasswordDigest string
}
