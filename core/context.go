package core

import "context"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	claimsKey contextKey = iota
	identityKey
)

// SetClaims stores verified claims in the context.
// Adapters call this after a successful presence-only check.
func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims stored by SetClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrIdentityNotFound
	}
	return claims, nil
}

// HasClaims checks if verified claims exist in the context.
func HasClaims(ctx context.Context) bool {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return ok && claims != nil
}

// SetIdentity stores the request's identity in the context.
func SetIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity stored by SetIdentity.
//
// Example usage:
//
//	identity, err := core.IdentityFromContext(r.Context())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(identity.ID)
func IdentityFromContext(ctx context.Context) (*Identity, error) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	if !ok || identity == nil {
		return nil, ErrIdentityNotFound
	}
	return identity, nil
}
