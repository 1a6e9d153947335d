package storage

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
	// ErrStateConflict is returned when a guarded update matched no row because
	// the row changed between read and write.
	ErrStateConflict = errors.New("state conflict")
)
