package auth

import (
	"errors"
	"fmt"
)

// Kind classifies every error the service returns. The transport layer maps
// each kind to a protocol response; Storage and Internal are opaque to
// callers.
type Kind int

const (
	KindInternal Kind = iota
	KindBadInput
	KindNotFound
	KindInvalidCredential
	KindExpired
	KindDuplicateSession
	KindSessionLimitExceeded
	KindAlreadyExists
	KindInvalidSecret
	KindNoInvitation
	KindForbidden
	KindStorage
)

var kindNames = [...]string{
	KindInternal:             "Internal",
	KindBadInput:             "BadInput",
	KindNotFound:             "NotFound",
	KindInvalidCredential:    "InvalidCredential",
	KindExpired:              "Expired",
	KindDuplicateSession:     "DuplicateSession",
	KindSessionLimitExceeded: "SessionLimitExceeded",
	KindAlreadyExists:        "AlreadyExists",
	KindInvalidSecret:        "InvalidSecret",
	KindNoInvitation:         "NoInvitation",
	KindForbidden:            "Forbidden",
	KindStorage:              "Storage",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is a tagged service error. Values are compared by identity, so
// callers can use errors.Is with the exported sentinels below.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

var (
	ErrBadInput             = &Error{KindBadInput, "bad input"}
	ErrAccountNotFound      = &Error{KindNotFound, "account not found"}
	ErrSessionNotFound      = &Error{KindNotFound, "session not found"}
	ErrInvalidPassword      = &Error{KindInvalidCredential, "invalid password"}
	ErrInvalidToken         = &Error{KindInvalidCredential, "invalid access token"}
	ErrTokenExpired         = &Error{KindExpired, "token expired"}
	ErrDuplicateSession     = &Error{KindDuplicateSession, "session already exists for this fingerprint"}
	ErrSessionLimitExceeded = &Error{KindSessionLimitExceeded, "sessions limit exceeded"}
	ErrAlreadyExists        = &Error{KindAlreadyExists, "account already exists"}
	ErrInvalidSecret        = &Error{KindInvalidSecret, "invalid secret code"}
	ErrNoInvitation         = &Error{KindNoInvitation, "no invitation for account"}
	ErrForbidden            = &Error{KindForbidden, "not enough rights"}
	ErrStorage              = &Error{KindStorage, "storage failure"}
	ErrInternal             = &Error{KindInternal, "internal error"}
)

// KindOf returns the kind of the first *Error in err's chain. Errors that
// carry no kind are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
