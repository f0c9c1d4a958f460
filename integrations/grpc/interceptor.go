package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"

	"github.com/kilterboard/jwt-middleware/core"
)

// JWTInterceptor authorizes gRPC calls carrying a bearer token.
type JWTInterceptor struct {
	core                *core.Core
	credentialExtractor CredentialExtractor
	errorHandler        ErrorHandler
	excludedMethods     map[string]bool
	logger              Logger
	identity            bool

	// Internal builder for accumulating core options
	coreBuilder *coreBuilder
}

// New creates a new gRPC interceptor with the provided options.
// WithVerifier option is required.
func New(opts ...Option) (*JWTInterceptor, error) {
	interceptor := &JWTInterceptor{
		credentialExtractor: MetadataCredential,
		errorHandler:        DefaultErrorHandler,
		excludedMethods:     make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	if interceptor.coreBuilder == nil || interceptor.coreBuilder.verifier == nil {
		return nil, errors.New("verifier is required, use WithVerifier option")
	}

	c, err := interceptor.coreBuilder.build()
	if err != nil {
		return nil, err
	}
	interceptor.core = c

	return interceptor, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that
// authorizes each call before handing it to the handler.
func (i *JWTInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if i.excluded(info.FullMethod) {
			return handler(ctx, req)
		}

		authCtx, err := i.authorize(ctx)
		if err != nil {
			return nil, err
		}

		return handler(authCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that
// authorizes each stream before handing it to the handler.
func (i *JWTInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excluded(info.FullMethod) {
			return handler(srv, ss)
		}

		authCtx, err := i.authorize(ss.Context())
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{
			ServerStream: ss,
			ctx:          authCtx,
		})
	}
}

func (i *JWTInterceptor) excluded(method string) bool {
	if !i.excludedMethods[method] {
		return false
	}
	if i.logger != nil {
		i.logger.Debug("skipping authorization for excluded method",
			"method", method)
	}
	return true
}

// authorize runs the pipeline and stores its result in the context.
func (i *JWTInterceptor) authorize(ctx context.Context) (context.Context, error) {
	cred := i.credentialExtractor(ctx)

	if i.identity {
		identity, err := i.core.AuthUser(ctx, cred)
		if err != nil {
			return ctx, i.errorHandler(err)
		}
		return core.SetIdentity(ctx, identity), nil
	}

	claims, err := i.core.Check(ctx, cred)
	if err != nil {
		return ctx, i.errorHandler(err)
	}
	return core.SetClaims(ctx, claims), nil
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context with the authorization result.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
