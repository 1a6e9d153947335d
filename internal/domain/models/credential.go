package models

import "time"

// AccessPayload is the content of a signed access credential. The server keeps
// no record of issued credentials.
type AccessPayload struct {
	Owner     string
	Role      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the credential is stale at now (expiry <= now).
func (p AccessPayload) Expired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}
