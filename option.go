package jwtmiddleware

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/kilterboard/jwt-middleware/core"
)

// Option configures the JWTMiddleware.
// Returns error for validation failures.
type Option func(*JWTMiddleware) error

// Tracer is the OpenTelemetry tracer used for authorization spans.
type Tracer = trace.Tracer

// WithVerifier sets the token verifier (REQUIRED). A *token.Codec is the
// usual choice.
//
// Example:
//
//	cfg, err := signing.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	codec, err := token.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	middleware, err := jwtmiddleware.New(
//	    jwtmiddleware.WithVerifier(codec),
//	)
func WithVerifier(v core.Verifier) Option {
	return func(m *JWTMiddleware) error {
		if v == nil {
			return ErrVerifierNil
		}
		m.verifier = v
		return nil
	}
}

// WithValidateOnOptions sets whether OPTIONS requests are authorized.
//
// Default: true (OPTIONS requests are authorized)
func WithValidateOnOptions(value bool) Option {
	return func(m *JWTMiddleware) error {
		m.validateOnOptions = value
		return nil
	}
}

// WithErrorHandler sets the handler called when authorization fails.
// See the ErrorHandler type for more information.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *JWTMiddleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithCredentialExtractor sets the function that reads the credential
// header from the request.
//
// Default: AuthHeaderCredential
func WithCredentialExtractor(e CredentialExtractor) Option {
	return func(m *JWTMiddleware) error {
		if e == nil {
			return ErrCredentialExtractorNil
		}
		m.credentialExtractor = e
		return nil
	}
}

// WithExclusionUrls configures URLs that are served without authorization.
// URLs can be full URLs or just paths.
func WithExclusionUrls(exclusions []string) Option {
	return func(m *JWTMiddleware) error {
		if len(exclusions) == 0 {
			return ErrExclusionUrlsEmpty
		}
		m.exclusionURLHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path

			for _, exclusion := range exclusions {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
		return nil
	}
}

// WithLogger sets an optional logger for the middleware.
// The logger is used by both the middleware and core.
//
// Example:
//
//	middleware, err := jwtmiddleware.New(
//	    jwtmiddleware.WithVerifier(codec),
//	    jwtmiddleware.WithLogger(jwtmiddleware.NewLogrusLogger(logrus.StandardLogger())),
//	)
func WithLogger(logger Logger) Option {
	return func(m *JWTMiddleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithMetrics sets the sink that records every authorization attempt.
// See NewPrometheusMetrics.
func WithMetrics(metrics core.Metrics) Option {
	return func(m *JWTMiddleware) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		m.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer used for authorization spans.
//
// Default: a no-op tracer.
func WithTracer(tracer Tracer) Option {
	return func(m *JWTMiddleware) error {
		if tracer == nil {
			return ErrTracerNil
		}
		m.tracer = tracer
		return nil
	}
}

// Sentinel errors for configuration validation
var (
	ErrVerifierNil            = errors.New("verifier cannot be nil (use WithVerifier)")
	ErrErrorHandlerNil        = errors.New("errorHandler cannot be nil")
	ErrCredentialExtractorNil = errors.New("credentialExtractor cannot be nil")
	ErrExclusionUrlsEmpty     = errors.New("exclusion URLs list cannot be empty")
	ErrLoggerNil              = errors.New("logger cannot be nil")
	ErrMetricsNil             = errors.New("metrics cannot be nil")
	ErrTracerNil              = errors.New("tracer cannot be nil")
)
