package core

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Option is a function that configures the Core.
// Options return errors to enable validation during construction.
type Option func(*Core) error

// New creates a new Core instance with the provided options.
//
// The Core must be configured with a Verifier using WithVerifier.
//
// Example:
//
//	codec, err := token.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := core.New(
//	    core.WithVerifier(codec),
//	    core.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Core, error) {
	c := &Core{
		tracer: noop.NewTracerProvider().Tracer("github.com/kilterboard/jwt-middleware/core"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.verifier == nil {
		return nil, NewError(ConfigurationUnavailable,
			errors.New("verifier is required but not set (use WithVerifier option)"))
	}

	return c, nil
}

// WithVerifier sets the token verifier. This is a required option.
func WithVerifier(verifier Verifier) Option {
	return func(c *Core) error {
		if verifier == nil {
			return errors.New("verifier cannot be nil")
		}
		c.verifier = verifier
		return nil
	}
}

// WithLogger sets an optional logger for the Core.
//
// The Core logs every failure at Warn with its kind, and every success at
// Debug with the token subject. Tokens are never logged.
func WithLogger(logger Logger) Option {
	return func(c *Core) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithMetrics sets an optional metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(c *Core) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = metrics
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer used for pipeline spans.
//
// Default: a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Core) error {
		if tracer == nil {
			return errors.New("tracer cannot be nil")
		}
		c.tracer = tracer
		return nil
	}
}
