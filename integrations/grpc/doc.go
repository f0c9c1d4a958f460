// Package grpc provides gRPC server interceptors for bearer token
// authorization.
//
// Both unary and streaming interceptors read the "authorization" metadata
// entry, run it through the authorization core and make the result
// available in the handler context.
//
// # Basic Usage
//
//	import (
//	    "log"
//
//	    jwtgrpc "github.com/kilterboard/jwt-middleware/integrations/grpc"
//	    "github.com/kilterboard/jwt-middleware/signing"
//	    "github.com/kilterboard/jwt-middleware/token"
//	    "google.golang.org/grpc"
//	)
//
//	func main() {
//	    cfg, err := signing.FromEnv()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    codec, err := token.New(cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    interceptor, err := jwtgrpc.New(
//	        jwtgrpc.WithVerifier(codec),
//	        jwtgrpc.WithIdentity(true),
//	        jwtgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    server := grpc.NewServer(
//	        grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
//	        grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
//	    )
//	}
//
// In a handler:
//
//	identity, err := jwtgrpc.IdentityFromContext(ctx)
//
// # Error Handling
//
// DefaultErrorHandler returns codes.Unauthenticated for missing, malformed,
// invalid and expired tokens, with the same messages the HTTP middleware
// uses ("Missing authentication token", "Invalid authentication token",
// "Authentication token expired"). Anything else is codes.Internal.
package grpc
