package auth

import (
	"context"
	"strings"

	"github.com/alexsk87/notehub/internal/common"
)

// Identity is the request-scoped outcome of authentication: either anonymous
// (zero value) or authenticated as a user. It is built once per request and
// never mutated afterwards.
type Identity struct {
	UserID string
}

// Authenticated reports whether the identity belongs to a verified user.
func (i Identity) Authenticated() bool { return i.UserID != "" }

// AuthenticateHeader derives an Identity from a raw Authorization header
// value. An absent header yields the anonymous identity without error. A
// present header must be exactly "Bearer <token>"; anything else is
// common.ErrorMalformedAuthHeader. Token verification failures are propagated
// from GetUserIDFromToken unchanged.
func AuthenticateHeader(header string, secretKey []byte) (Identity, error) {
	if header == "" {
		return Identity{}, nil
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Identity{}, common.ErrorMalformedAuthHeader
	}

	userID, err := GetUserIDFromToken(parts[1], secretKey)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: userID}, nil
}

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity stored in ctx, or the anonymous
// identity when none was set.
func IdentityFromContext(ctx context.Context) Identity {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}
	}
	return identity
}
