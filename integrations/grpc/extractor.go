package grpc

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/kilterboard/jwt-middleware/core"
)

// CredentialExtractor reads the raw credential from the incoming call.
type CredentialExtractor func(ctx context.Context) core.Credential

// MetadataCredential reads the "authorization" metadata entry. Only the
// first value is used.
//
// gRPC normalizes incoming metadata keys to lowercase, so this extractor only
// checks the lowercase "authorization" key.
func MetadataCredential(ctx context.Context) core.Credential {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return core.Credential{}
	}
	return core.HeaderCredential(md.Get("authorization"))
}
