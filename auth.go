package storekeep

import "crypto/subtle"

// CredentialVerifier is the capability the session layer uses to gate access.
// The core never participates in authentication beyond defining this contract.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single fixed username/password pair.
type StaticCredentials struct {
	Username string
	Password string
}

// Verify reports whether the given pair matches. Comparison is constant-time
// so a caller cannot probe the password length.
func (c StaticCredentials) Verify(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username))
	p := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password))
	return u&p == 1
}
