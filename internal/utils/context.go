// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, identifiers and share tokens.
package utils

import (
	"context"

	"github.com/MKhiriev/co-script/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated caller in the
// context. The auth middleware writes a [models.Identity] under it.
var IdentityCtxKey = contextKey("identity")

// TokenCtxKey stores the parsed session token so that logout can revoke it.
var TokenCtxKey = contextKey("token")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when no identity is stored, when it has an unexpected type, or
// when its ID is empty.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || id.ID == "" {
		return models.Identity{}, false
	}
	return id, true
}

// GetTokenFromContext retrieves the session token stored by the auth middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
