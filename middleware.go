package jwtmiddleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kilterboard/jwt-middleware/core"
)

// JWTMiddleware authorizes requests carrying a bearer token.
type JWTMiddleware struct {
	core                *core.Core
	errorHandler        ErrorHandler
	credentialExtractor CredentialExtractor
	validateOnOptions   bool
	exclusionURLHandler ExclusionURLHandler
	logger              Logger

	// Temporary fields used during construction
	verifier core.Verifier
	metrics  core.Metrics
	tracer   Tracer
}

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core for consistent logging across the stack.
type Logger = core.Logger

// ExclusionURLHandler is a function that takes in a http.Request and returns
// true if the request should be excluded from authorization.
type ExclusionURLHandler func(r *http.Request) bool

// New constructs a new JWTMiddleware instance with the supplied options.
//
// Example:
//
//	codec, err := token.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	middleware, err := jwtmiddleware.New(
//	    jwtmiddleware.WithVerifier(codec),
//	)
//	if err != nil {
//	    log.Fatalf("failed to create middleware: %v", err)
//	}
func New(opts ...Option) (*JWTMiddleware, error) {
	m := &JWTMiddleware{
		validateOnOptions: true,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid middleware configuration: %w", err)
	}

	m.applyDefaults()

	if err := m.createCore(); err != nil {
		return nil, fmt.Errorf("failed to create core: %w", err)
	}

	return m, nil
}

// validate ensures all required fields are set
func (m *JWTMiddleware) validate() error {
	if m.verifier == nil {
		return ErrVerifierNil
	}
	return nil
}

// createCore creates the core.Core instance with the configured options
func (m *JWTMiddleware) createCore() error {
	coreOpts := []core.Option{
		core.WithVerifier(m.verifier),
	}
	if m.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(m.logger))
	}
	if m.metrics != nil {
		coreOpts = append(coreOpts, core.WithMetrics(m.metrics))
	}
	if m.tracer != nil {
		coreOpts = append(coreOpts, core.WithTracer(m.tracer))
	}

	coreInstance, err := core.New(coreOpts...)
	if err != nil {
		return err
	}
	m.core = coreInstance
	return nil
}

// applyDefaults sets default values for optional fields
func (m *JWTMiddleware) applyDefaults() {
	if m.errorHandler == nil {
		m.errorHandler = DefaultErrorHandler
	}
	if m.credentialExtractor == nil {
		m.credentialExtractor = AuthHeaderCredential
	}
}

// RequireAuth rejects requests without a valid bearer token. The verified
// claims are available to next through ClaimsFromContext.
func (m *JWTMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.core.Check(r.Context(), m.credentialExtractor(r))
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(core.SetClaims(r.Context(), claims)))
	})
}

// AuthUser rejects requests without a valid bearer token for a known user
// id and passes the derived identity to next. Use IdentityFromContext to
// read it.
func (m *JWTMiddleware) AuthUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.core.AuthUser(r.Context(), m.credentialExtractor(r))
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(core.SetIdentity(r.Context(), identity)))
	})
}

func (m *JWTMiddleware) skip(r *http.Request) bool {
	if m.exclusionURLHandler != nil && m.exclusionURLHandler(r) {
		if m.logger != nil {
			m.logger.Debug("skipping authorization for excluded URL",
				"method", r.Method,
				"path", r.URL.Path)
		}
		return true
	}

	if !m.validateOnOptions && r.Method == http.MethodOptions {
		if m.logger != nil {
			m.logger.Debug("skipping authorization for OPTIONS request")
		}
		return true
	}

	return false
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*core.Claims, error) {
	return core.ClaimsFromContext(ctx)
}

// IdentityFromContext returns the identity stored by AuthUser.
//
// Example:
//
//	identity, err := jwtmiddleware.IdentityFromContext(r.Context())
//	if err != nil {
//	    http.Error(w, "no identity", http.StatusInternalServerError)
//	    return
//	}
//	fmt.Fprintln(w, identity.Username)
func IdentityFromContext(ctx context.Context) (*core.Identity, error) {
	return core.IdentityFromContext(ctx)
}

// MustIdentity returns the identity stored by AuthUser or panics.
// Use only in handlers wrapped by AuthUser.
func MustIdentity(ctx context.Context) *core.Identity {
	identity, err := core.IdentityFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return identity
}
