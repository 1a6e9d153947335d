// Package secret issues the single-use secrets that gate invitation redemption
// and password reset, and the opaque refresh tokens handed to clients.
package secret

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Issuer generates random version-4 identifiers (122 random bits out of 128).
type Issuer struct{}

// NewIssuer returns an Issuer.
func NewIssuer() *Issuer {
	return &Issuer{}
}

// Issue returns a fresh secret.
func (Issuer) Issue() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("secret.Issue: %w", err)
	}
	return id.String(), nil
}

// Matches reports whether candidate redeems the stored secret. An inactive
// secret never matches. The comparison is constant-time.
func Matches(stored string, active bool, candidate string) bool {
	if !active || stored == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// HashToken returns the hex SHA-256 of a refresh token, the form stored at rest.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
