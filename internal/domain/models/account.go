package models

import "time"

// Profile holds descriptive account fields. None of them affect authentication.
type Profile struct {
	Name    string
	Surname string
}

// Account is a user scoped to a partition. Identifier uniqueness holds per
// (Identifier, Partition) pair, not globally.
type Account struct {
	ID         int64
	PublicID   string
	Identifier string
	Partition  string
	Role       string
	Profile    Profile

	// PassHash is nil while the account is an unredeemed invitation.
	PassHash []byte

	Secret       string
	SecretActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activated reports whether the account has a credential set.
func (a Account) Activated() bool {
	return len(a.PassHash) > 0
}
