package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"authsvc/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSignatureInvalid is returned when a credential's signature does not
// match or its payload cannot be decoded.
var ErrSignatureInvalid = errors.New("signature invalid")

const (
	claimOwner     = "userId"
	claimRole      = "role"
	claimExpiresIn = "expiresIn"
	claimIssuedAt  = "issuedAt"
)

// Signer mints and verifies HS256 access credentials. It never consults the
// clock: expiry is whatever the caller puts in the payload and is not checked
// on verification.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer using key as the HMAC secret.
func NewSigner(key string) (*Signer, error) {
	if key == "" {
		return nil, errors.New("jwt: empty signing key")
	}
	return &Signer{key: []byte(key)}, nil
}

// Mint signs p. Times are encoded as epoch milliseconds.
func (s *Signer) Mint(p models.AccessPayload) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			claimOwner:     p.Owner,
			claimRole:      p.Role,
			claimExpiresIn: p.ExpiresAt.UnixMilli(),
			claimIssuedAt:  p.IssuedAt.UnixMilli(),
		})
	return token.SignedString(s.key)
}

// Verify checks the signature of tokenString and decodes its payload.
// A stale credential still verifies; staleness is the caller's decision.
func (s *Signer) Verify(tokenString string) (models.AccessPayload, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		return models.AccessPayload{}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.AccessPayload{}, ErrSignatureInvalid
	}

	return decode(claims)
}

func decode(claims jwt.MapClaims) (models.AccessPayload, error) {
	owner, ok := claims[claimOwner].(string)
	if !ok || owner == "" {
		return models.AccessPayload{}, fmt.Errorf("%w: missing %s", ErrSignatureInvalid, claimOwner)
	}
	role, ok := claims[claimRole].(string)
	if !ok {
		return models.AccessPayload{}, fmt.Errorf("%w: missing %s", ErrSignatureInvalid, claimRole)
	}
	exp, err := millis(claims[claimExpiresIn])
	if err != nil {
		return models.AccessPayload{}, fmt.Errorf("%w: %s: %v", ErrSignatureInvalid, claimExpiresIn, err)
	}
	iat, err := millis(claims[claimIssuedAt])
	if err != nil {
		return models.AccessPayload{}, fmt.Errorf("%w: %s: %v", ErrSignatureInvalid, claimIssuedAt, err)
	}

	return models.AccessPayload{
		Owner:     owner,
		Role:      role,
		ExpiresAt: time.UnixMilli(exp).UTC(),
		IssuedAt:  time.UnixMilli(iat).UTC(),
	}, nil
}

func millis(v interface{}) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New("not a number")
	}
	return n.Int64()
}
