package grpc

import (
	"context"

	"github.com/kilterboard/jwt-middleware/core"
)

// ClaimsFromContext returns the claims stored by the interceptor.
//
// Example:
//
//	claims, err := jwtgrpc.ClaimsFromContext(ctx)
//	if err != nil {
//	    return nil, status.Error(codes.Internal, "failed to get claims")
//	}
//	fmt.Println(claims.Subject)
func ClaimsFromContext(ctx context.Context) (*core.Claims, error) {
	return core.ClaimsFromContext(ctx)
}

// IdentityFromContext returns the identity stored by an interceptor
// configured WithIdentity(true).
func IdentityFromContext(ctx context.Context) (*core.Identity, error) {
	return core.IdentityFromContext(ctx)
}

// HasClaims checks if claims exist in the context.
func HasClaims(ctx context.Context) bool {
	return core.HasClaims(ctx)
}
