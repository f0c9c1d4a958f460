package core

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Verifier verifies a token string and returns its claims.
// Implementations should return a *Error of kind ExpiredCredential for
// tokens whose signature is valid but that are past their expiry.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, token string) (*Claims, error)

// Verify calls f(ctx, token).
func (f VerifierFunc) Verify(ctx context.Context, token string) (*Claims, error) {
	return f(ctx, token)
}

// Logger defines an optional logging interface for the core pipeline.
// It is compatible with log/slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives the outcome of every pipeline run. Outcome is "success"
// or the failing Kind's String value.
type Metrics interface {
	ObserveCheck(mode, outcome string, duration time.Duration)
}

// Extraction modes, used for logging, metrics and span attributes.
const (
	ModeRequireAuth = "require_auth"
	ModeAuthUser    = "auth_user"
)

const outcomeSuccess = "success"

// Core is the framework-agnostic authorization engine.
type Core struct {
	verifier Verifier
	logger   Logger
	metrics  Metrics
	tracer   trace.Tracer
}

// Check runs the presence, format, non-empty and verification stages on the
// credential and returns the verified claims. It stops at the first failing
// stage.
func (c *Core) Check(ctx context.Context, cred Credential) (*Claims, error) {
	return c.run(ctx, ModeRequireAuth, cred)
}

// RequireAuth is the presence-only mode: it succeeds once the token verifies
// and does not build an identity.
func (c *Core) RequireAuth(ctx context.Context, cred Credential) error {
	_, err := c.run(ctx, ModeRequireAuth, cred)
	return err
}

// AuthUser is the identity mode: it runs the pipeline and converts the
// verified claims into an Identity.
func (c *Core) AuthUser(ctx context.Context, cred Credential) (*Identity, error) {
	var identity *Identity
	_, err := c.runWith(ctx, ModeAuthUser, cred, func(claims *Claims) error {
		var err error
		identity, err = claims.Identity()
		return err
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (c *Core) run(ctx context.Context, mode string, cred Credential) (*Claims, error) {
	return c.runWith(ctx, mode, cred, nil)
}

func (c *Core) runWith(ctx context.Context, mode string, cred Credential, project func(*Claims) error) (*Claims, error) {
	ctx, span := c.tracer.Start(ctx, "jwtmiddleware.check",
		trace.WithAttributes(attribute.String("auth.mode", mode)))
	defer span.End()

	start := time.Now()
	claims, err := c.check(ctx, cred)
	if err == nil && project != nil {
		err = project(claims)
	}
	duration := time.Since(start)

	outcome := outcomeSuccess
	if err != nil {
		outcome = KindOf(err).String()
		span.SetStatus(codes.Error, outcome)
	}
	span.SetAttributes(attribute.String("auth.outcome", outcome))

	if c.metrics != nil {
		c.metrics.ObserveCheck(mode, outcome, duration)
	}

	if err != nil {
		if c.logger != nil {
			c.logger.Warn("authorization failed",
				"mode", mode,
				"kind", outcome,
				"error", err,
				"duration", duration)
		}
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debug("authorization succeeded",
			"mode", mode,
			"subject", claims.Subject,
			"duration", duration)
	}
	return claims, nil
}

func (c *Core) check(ctx context.Context, cred Credential) (*Claims, error) {
	token, err := ParseBearer(cred)
	if err != nil {
		return nil, err
	}

	claims, err := c.verifier.Verify(ctx, token)
	if err != nil {
		// Expiry is the only verification failure reported as its own kind.
		var authErr *Error
		if errors.As(err, &authErr) &&
			(authErr.Kind == ExpiredCredential || authErr.Kind == InvalidSignatureOrClaims) {
			return nil, authErr
		}
		return nil, NewError(InvalidSignatureOrClaims, err)
	}
	if claims == nil {
		return nil, NewError(InvalidSignatureOrClaims, errors.New("verifier returned no claims"))
	}

	return claims, nil
}
