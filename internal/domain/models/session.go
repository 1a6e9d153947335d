package models

import "time"

// RefreshSession binds a refresh token to an owner and a client fingerprint.
// At most one session exists per (Owner, Fingerprint).
type RefreshSession struct {
	ID int64
	// Owner is the account public id.
	Owner string
	// TokenHash is the SHA-256 of the refresh token; the plain token is never stored.
	TokenHash   string
	Fingerprint string
	UserAgent   string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// IsLive reports whether the session may still be used at now.
// Expiry is evaluated lazily: nothing sweeps dead rows, callers purge them on read.
func (s RefreshSession) IsLive(now time.Time) bool {
	return !s.ExpiresAt.Before(now)
}
