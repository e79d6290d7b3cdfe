package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errEmptySubject = errors.New("token subject is empty")

// Token wraps a session JWT.
//
// RegisteredClaims carries sub (user id), jti (session id), iss, iat and exp.
// Email is a private claim so that the auth middleware can build an
// [Identity] without a database round trip.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Email string `json:"email"`

	// SignedString is the compact JWS form sent in the Authorization header
	// and the session cookie.
	SignedString string `json:"-"`

	// UserID is a parsed copy of the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errEmptySubject
	}
	return sub, nil
}

// Identity returns the caller identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{ID: t.UserID, Email: t.Email}
}

// TTL reports how long the token stays valid from now. Zero when expired or
// when the token has no expiry.
func (t *Token) TTL(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	ttl := t.ExpiresAt.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
