package grpc

import (
	"errors"

	"go.opentelemetry.io/otel/trace"

	"github.com/kilterboard/jwt-middleware/core"
)

// Option configures the JWT interceptor.
type Option func(*JWTInterceptor) error

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core for consistent logging across the stack.
type Logger = core.Logger

// coreBuilder helps build a core.Core with accumulated options.
type coreBuilder struct {
	verifier core.Verifier
	logger   Logger
	metrics  core.Metrics
	tracer   trace.Tracer
}

func (b *coreBuilder) build() (*core.Core, error) {
	opts := []core.Option{
		core.WithVerifier(b.verifier),
	}
	if b.logger != nil {
		opts = append(opts, core.WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, core.WithMetrics(b.metrics))
	}
	if b.tracer != nil {
		opts = append(opts, core.WithTracer(b.tracer))
	}

	return core.New(opts...)
}

func (i *JWTInterceptor) builder() *coreBuilder {
	if i.coreBuilder == nil {
		i.coreBuilder = &coreBuilder{}
	}
	return i.coreBuilder
}

// WithVerifier sets the token verifier (REQUIRED).
//
// Example:
//
//	interceptor, _ := grpc.New(
//	    grpc.WithVerifier(codec),
//	    grpc.WithLogger(logger),
//	)
func WithVerifier(v core.Verifier) Option {
	return func(i *JWTInterceptor) error {
		if v == nil {
			return errors.New("verifier cannot be nil")
		}
		i.builder().verifier = v
		return nil
	}
}

// WithIdentity switches the interceptor to identity mode: the token subject
// must be a user id and the derived identity is stored in the context. Read
// it with IdentityFromContext.
//
// Default: false (claims are stored, the subject is not inspected)
func WithIdentity(enabled bool) Option {
	return func(i *JWTInterceptor) error {
		i.identity = enabled
		return nil
	}
}

// WithLogger sets an optional logger for the interceptor.
// The logger is used by both the interceptor and core.
func WithLogger(logger Logger) Option {
	return func(i *JWTInterceptor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		i.builder().logger = logger
		i.logger = logger
		return nil
	}
}

// WithMetrics sets the sink that records every authorization attempt.
func WithMetrics(metrics core.Metrics) Option {
	return func(i *JWTInterceptor) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		i.builder().metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer used for authorization spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(i *JWTInterceptor) error {
		if tracer == nil {
			return errors.New("tracer cannot be nil")
		}
		i.builder().tracer = tracer
		return nil
	}
}

// WithCredentialExtractor sets a custom credential extractor function.
// Default is MetadataCredential which reads the "authorization" metadata.
func WithCredentialExtractor(extractor CredentialExtractor) Option {
	return func(i *JWTInterceptor) error {
		if extractor == nil {
			return errors.New("credential extractor cannot be nil")
		}
		i.credentialExtractor = extractor
		return nil
	}
}

// WithErrorHandler sets a custom error handler function.
// Default is DefaultErrorHandler which maps errors to gRPC status codes.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *JWTInterceptor) error {
		if handler == nil {
			return errors.New("error handler cannot be nil")
		}
		i.errorHandler = handler
		return nil
	}
}

// WithExcludedMethods excludes specific gRPC methods from authorization.
// Methods should be provided in the format: "/package.Service/Method"
// Example: "/myapp.MyService/PublicMethod", "/grpc.health.v1.Health/Check"
func WithExcludedMethods(methods ...string) Option {
	return func(i *JWTInterceptor) error {
		if i.excludedMethods == nil {
			i.excludedMethods = make(map[string]bool)
		}
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}
