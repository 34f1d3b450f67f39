// Package http provides the HTTP authentication gate, the route classifier,
// and the permission resolution middleware.
package http

import (
	"context"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
)

// identityKey is a context key type for storing verified identities.
type identityKey struct{}

// WithIdentity stores a verified identity in the context.
// This is called by the authentication middleware after token verification.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the verified identity from the context.
// Returns (identity, true) if one is present, or (nil, false) if the request
// never passed the authentication middleware.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}
