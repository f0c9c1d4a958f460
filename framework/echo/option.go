package jwtecho

import (
	"github.com/labstack/echo/v4"
)

// Option is a function that configures the middleware
type Option func(*echoMiddlewareConfig)

// WithErrorHandler sets a custom error handler. Its return value is returned
// from the middleware and the next handler is not called.
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(config *echoMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithIdentityKey sets the context key AuthUser stores the identity under.
// Read it back with GetIdentityWithKey.
func WithIdentityKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.identityKey = key
	}
}

// WithClaimsKey sets a custom context key to store claims
func WithClaimsKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.claimsKey = key
	}
}

// WithHeader sets the header the credential is read from.
//
// Default: Authorization
func WithHeader(name string) Option {
	return func(config *echoMiddlewareConfig) {
		config.header = name
	}
}
